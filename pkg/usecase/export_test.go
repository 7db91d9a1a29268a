package usecase

// ComputeCount returns how many times the dashboard was recomputed
func (uc *DashboardUseCase) ComputeCount() int64 {
	return uc.computed.Load()
}
