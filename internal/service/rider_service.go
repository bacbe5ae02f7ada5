package service

// RiderService операции над пулом свободных курьеров.
type RiderService struct {
	riders RiderRepository
}

func NewRiderService(riders RiderRepository) *RiderService {
	return &RiderService{riders: riders}
}

func (s *RiderService) AddRider(riderID string) {
	s.riders.Register(riderID)
}

// GetRiders возвращает только свободных курьеров: назначенные на заказ
// в списке не появляются до повторной регистрации.
func (s *RiderService) GetRiders() []string {
	return s.riders.List()
}
