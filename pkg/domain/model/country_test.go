package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roadmap/pkg/domain/model"
)

func TestNewCountryRegistry(t *testing.T) {
	reg := model.NewCountryRegistry()
	gt.Value(t, reg).NotNil()
	gt.Array(t, reg.List()).Length(0)
	gt.Array(t, reg.Codes()).Length(0)
}

func TestCountryRegistry_Register(t *testing.T) {
	reg := model.NewCountryRegistry(
		model.Country{Code: "BR", Name: "Brasil"},
		model.Country{Code: "AR", Name: "Argentina"},
	)

	gt.Array(t, reg.List()).Length(2)
	gt.Value(t, reg.List()[0].Code).Equal("BR")
	gt.Value(t, reg.List()[1].Code).Equal("AR")

	reg.Register(model.Country{Code: "BR", Name: "Brazil"})
	gt.Array(t, reg.List()).Length(2)
	gt.Value(t, reg.List()[0].Name).Equal("Brazil")
}

func TestCountryRegistry_Get(t *testing.T) {
	reg := model.NewCountryRegistry(model.Country{Code: "CL", Name: "Chile"})

	c, err := reg.Get("CL")
	gt.NoError(t, err).Required()
	gt.Value(t, c.Name).Equal("Chile")
	gt.Bool(t, reg.Has("CL")).True()

	_, err = reg.Get("PE")
	gt.Bool(t, errors.Is(err, model.ErrCountryNotFound)).True()
	gt.Bool(t, reg.Has("PE")).False()
}

func TestCountryRegistry_CodesIsCopy(t *testing.T) {
	reg := model.NewCountryRegistry(model.Country{Code: "UY", Name: "Uruguai"})
	codes := reg.Codes()
	codes[0] = "XX"
	gt.Value(t, reg.Codes()[0]).Equal("UY")
}
