// Package calculators: cálculos de salud stateless (IMC y metabolismo).
// No hay repositorio; nada se persiste.
package calculators

import "errors"

var ErrInvalidInput = errors.New("invalid input")

type Sex string

const (
	SexMale   Sex = "masculino"
	SexFemale Sex = "feminino"
)

// ActivityLevel es el nivel de actividad física del paciente.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentario"
	ActivityLight     ActivityLevel = "leve"
	ActivityModerate  ActivityLevel = "moderado"
	ActivityActive    ActivityLevel = "ativo"
	ActivityExtreme   ActivityLevel = "extremo"
)

// Multiplicadores de GET sobre la TMB por nivel de actividad.
var activityFactors = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityExtreme:   1.9,
}

// BMI: peso en kg sobre altura en metros al cuadrado.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// ClassifyBMI devuelve la clasificación pt-BR del IMC.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Abaixo do peso"
	case bmi <= 24.9:
		return "Normal"
	case bmi <= 29.9:
		return "Sobrepeso"
	case bmi <= 34.9:
		return "Obesidade Grau I"
	case bmi <= 39.9:
		return "Obesidade Grau II"
	default:
		return "Obesidade Grau III"
	}
}

// BasalRate es la TMB por Mifflin-St Jeor, en kcal/día.
func BasalRate(weightKg, heightCm float64, ageYears int, sex Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if sex == SexMale {
		return base + 5
	}
	return base - 161
}

type BMIInput struct {
	WeightKg float64
	HeightCm float64
	AgeYears int
	Sex      Sex
}

type BMIResult struct {
	BMI            float64
	Classification string
	BasalRate      float64
}

// ComputeBMI replica la pantalla de IMC: índice, clasificación y la
// TMB estimada para los mismos datos.
func ComputeBMI(in BMIInput) (BMIResult, error) {
	if err := validate(in.WeightKg, in.HeightCm, in.AgeYears, in.Sex); err != nil {
		return BMIResult{}, err
	}
	bmi := BMI(in.WeightKg, in.HeightCm)
	return BMIResult{
		BMI:            bmi,
		Classification: ClassifyBMI(bmi),
		BasalRate:      BasalRate(in.WeightKg, in.HeightCm, in.AgeYears, in.Sex),
	}, nil
}

type MetabolismInput struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Sex           Sex
	ActivityLevel ActivityLevel
}

type MetabolismResult struct {
	BasalRate float64 // TMB
	Total     float64 // GET = TMB * factor de actividad
	Factor    float64
}

// ComputeMetabolism replica la pantalla de metabolismo basal: TMB y
// gasto energético total según el nivel de actividad.
func ComputeMetabolism(in MetabolismInput) (MetabolismResult, error) {
	if err := validate(in.WeightKg, in.HeightCm, in.AgeYears, in.Sex); err != nil {
		return MetabolismResult{}, err
	}
	factor, ok := activityFactors[in.ActivityLevel]
	if !ok {
		return MetabolismResult{}, ErrInvalidInput
	}
	tmb := BasalRate(in.WeightKg, in.HeightCm, in.AgeYears, in.Sex)
	return MetabolismResult{
		BasalRate: tmb,
		Total:     tmb * factor,
		Factor:    factor,
	}, nil
}

func validate(weightKg, heightCm float64, ageYears int, sex Sex) error {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return ErrInvalidInput
	}
	if sex != SexMale && sex != SexFemale {
		return ErrInvalidInput
	}
	return nil
}
