package domain

import "errors"

const cmPerInch = 2.54

var ErrInvalidBMIInput = errors.New("weight and height must be positive")

// HeightFromFeet converts a feet + inches height to centimetres.
func HeightFromFeet(feet, inches int) float64 {
	return float64(feet*12+inches) * cmPerInch
}

// BMI returns weight / height(m)^2.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidBMIInput
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}
