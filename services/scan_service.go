package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/OtaoDavis/Tfit-app/models"
)

// ScanService stands in for the AI meal-analysis flow. The capture
// pipeline hands back a photo and a slot; this produces a plausible
// nutrition estimate for the diary entry. Swap in a real vision model
// behind the same signature when one is wired up.
type ScanService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScanService() *ScanService {
	return &ScanService{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

type ScanResult struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbohydrates"`
	Fat      float64 `json:"fat"`
}

// Estimate returns mock nutrition in the same ranges the mobile app
// used: 100-499 kcal, 5-34 g protein, 10-59 g carbs, 5-24 g fat.
func (s *ScanService) Estimate(slot models.MealSlot) ScanResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ScanResult{
		Name:     string(slot),
		Calories: float64(s.rng.Intn(400) + 100),
		Protein:  float64(s.rng.Intn(30) + 5),
		Carbs:    float64(s.rng.Intn(50) + 10),
		Fat:      float64(s.rng.Intn(20) + 5),
	}
}
