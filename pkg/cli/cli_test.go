package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roadmap/pkg/cli"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	argv := append([]string{"roadmap", "--log-output", "stderr", "--log-level", "warn"}, args...)
	err := cli.RunWithWriter(context.Background(), argv, "test", &out)
	return out.String(), err
}

const answersTOML = `
[answers.BR]
"1" = true
"2" = true
"13" = true

[answers.AR]
"1" = true
`

func TestRun_ValidateCommand_Seed(t *testing.T) {
	_, err := run(t, "validate")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_WithAnswers(t *testing.T) {
	answers := writeFile(t, "answers.toml", answersTOML)
	_, err := run(t, "validate", "--answers", answers)
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidCatalog(t *testing.T) {
	path := writeFile(t, "catalog.toml", `
[[entry]]
id = "1"
kind = "practice"
name = "ERP"
level = 9.0
description = "d"
`)
	_, err := run(t, "validate", "--catalog", path)
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_MissingCatalog(t *testing.T) {
	_, err := run(t, "validate", "--catalog", filepath.Join(t.TempDir(), "none.toml"))
	gt.Value(t, err).NotNil()
}

func TestRun_ValidateCommand_UnknownAnswer(t *testing.T) {
	answers := writeFile(t, "answers.yaml", `
answers:
  BR:
    "999": true
`)
	_, err := run(t, "validate", "--answers", answers)
	gt.Value(t, err).NotNil()
}

func TestRun_ScoreCommand_Text(t *testing.T) {
	answers := writeFile(t, "answers.toml", answersTOML)
	out, err := run(t, "score", "--answers", answers)
	gt.NoError(t, err).Required()

	gt.String(t, out).Contains("COUNTRY")
	gt.String(t, out).Contains("BR")
	gt.String(t, out).Contains("2.00")
	gt.String(t, out).Contains("AU")
	// AR has one of the three level 1 practices
	gt.String(t, out).Contains("33% N1")
}

func TestRun_ScoreCommand_JSON(t *testing.T) {
	answers := writeFile(t, "answers.toml", answersTOML)
	out, err := run(t, "score", "--answers", answers, "--format", "json")
	gt.NoError(t, err).Required()

	var results []struct {
		Code             string  `json:"code"`
		Score            float64 `json:"score"`
		EffectiveLevel   int     `json:"effective_level"`
		IncompleteLevels []struct {
			Level      int `json:"level"`
			Percentage int `json:"percentage"`
		} `json:"incomplete_levels"`
	}
	gt.NoError(t, json.Unmarshal([]byte(out), &results)).Required()
	gt.Array(t, results).Length(7).Required()

	gt.Value(t, results[0].Code).Equal("BR")
	gt.Value(t, results[0].Score).Equal(2.0)
	gt.Value(t, results[0].EffectiveLevel).Equal(1)
	gt.Array(t, results[0].IncompleteLevels).Length(0)

	// AR has one of three level 1 practices (weights 5/15) and nothing
	// else, so level 1 is the best partial level
	gt.Value(t, results[1].Code).Equal("AR")
	gt.Value(t, results[1].EffectiveLevel).Equal(1)
	gt.Array(t, results[1].IncompleteLevels).Length(1).Required()
	gt.Value(t, results[1].IncompleteLevels[0].Percentage).Equal(33)
}

func TestRun_ScoreCommand_Errors(t *testing.T) {
	t.Run("answers flag is required", func(t *testing.T) {
		_, err := run(t, "score")
		gt.Value(t, err).NotNil()
	})

	t.Run("unknown format", func(t *testing.T) {
		answers := writeFile(t, "answers.toml", answersTOML)
		_, err := run(t, "score", "--answers", answers, "--format", "xml")
		gt.Value(t, err).NotNil()
	})
}

func TestRun_ServeCommand_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	err := cli.RunWithWriter(ctx, []string{
		"roadmap", "--log-output", "stderr", "--log-level", "warn",
		"serve", "--addr", "127.0.0.1:0",
	}, "test", &out)
	gt.NoError(t, err)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.RunWithWriter(context.Background(), []string{"roadmap", "--log-level", "loud", "validate"}, "test", &bytes.Buffer{})
	gt.Value(t, err).NotNil()
}
