package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"truthguard/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		indicators int
		sentiment  float64
		want       domain.Label
	}{
		{"no signals", 0, 0.0, domain.LabelReal},
		{"sentiment at 0.15 is still real", 0, 0.15, domain.LabelReal},
		{"sentiment at -0.15 is still real", 0, -0.15, domain.LabelReal},
		{"sentiment just above 0.15", 0, 0.1501, domain.LabelSuspicious},
		{"sentiment just below -0.15", 0, -0.1501, domain.LabelSuspicious},
		{"one indicator", 1, 0.0, domain.LabelSuspicious},
		{"two indicators", 2, 0.0, domain.LabelSuspicious},
		{"two indicators low sentiment", 2, 0.1, domain.LabelSuspicious},
		{"three indicators", 3, 0.0, domain.LabelFake},
		{"many indicators", 10, 0.0, domain.LabelFake},
		{"sentiment at 0.5 is not fake", 0, 0.5, domain.LabelSuspicious},
		{"sentiment just above 0.5", 0, 0.5001, domain.LabelFake},
		{"sentiment at -0.25 is not fake", 0, -0.25, domain.LabelSuspicious},
		{"sentiment just below -0.25", 0, -0.2501, domain.LabelFake},
		{"fake clause wins over suspicious", 3, 0.2, domain.LabelFake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.indicators, tt.sentiment))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify(2, 0.3)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Classify(2, 0.3))
	}
}

func TestAdjustForCorroboration(t *testing.T) {
	tests := []struct {
		name    string
		label   domain.Label
		results int
		want    domain.Label
	}{
		{"real downgraded without corroboration", domain.LabelReal, 0, domain.LabelSuspicious},
		{"real downgraded at two results", domain.LabelReal, 2, domain.LabelSuspicious},
		{"real kept at three results", domain.LabelReal, 3, domain.LabelReal},
		{"uncertain becomes fake without corroboration", domain.LabelUncertain, 0, domain.LabelFake},
		{"uncertain kept at three results", domain.LabelUncertain, 3, domain.LabelUncertain},
		{"suspicious unchanged", domain.LabelSuspicious, 0, domain.LabelSuspicious},
		{"fake unchanged", domain.LabelFake, 0, domain.LabelFake},
		{"fake unchanged with corroboration", domain.LabelFake, 6, domain.LabelFake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdjustForCorroboration(tt.label, tt.results))
		})
	}
}

func TestAdjustForCorroboration_IdempotentBeyondFirstApplication(t *testing.T) {
	labels := []domain.Label{
		domain.LabelReal, domain.LabelSuspicious, domain.LabelFake, domain.LabelUncertain,
	}
	for _, label := range labels {
		for _, count := range []int{0, 2, 3, 6} {
			once := AdjustForCorroboration(label, count)
			twice := AdjustForCorroboration(once, count)
			assert.Equal(t, once, twice, "label %s, count %d", label, count)
		}
	}
}
