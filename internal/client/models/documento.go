package models

import "strings"

// digitsOf strips formatting from a CPF/CNPJ and keeps only digits.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidCPF reports whether s is a well-formed CPF (11 digits plus two valid
// check digits). Formatting characters are ignored.
func ValidCPF(s string) bool {
	d := digitsOf(s)
	if len(d) != 11 || allSame(d) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(d[i]-'0') * (10 - i)
	}
	check := (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	if check != int(d[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(d[i]-'0') * (11 - i)
	}
	check = (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	return check == int(d[10]-'0')
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCNPJ reports whether s is a well-formed CNPJ (14 digits plus two
// valid check digits). Formatting characters are ignored.
func ValidCNPJ(s string) bool {
	d := digitsOf(s)
	if len(d) != 14 || allSame(d) {
		return false
	}

	sum := 0
	for i, w := range cnpjWeights1 {
		sum += int(d[i]-'0') * w
	}
	check := sum % 11
	if check < 2 {
		check = 0
	} else {
		check = 11 - check
	}
	if check != int(d[12]-'0') {
		return false
	}

	sum = 0
	for i, w := range cnpjWeights2 {
		sum += int(d[i]-'0') * w
	}
	check = sum % 11
	if check < 2 {
		check = 0
	} else {
		check = 11 - check
	}
	return check == int(d[13]-'0')
}

// ValidCPFOrCNPJ picks the validation by digit count.
func ValidCPFOrCNPJ(s string) bool {
	if len(digitsOf(s)) == 11 {
		return ValidCPF(s)
	}
	return ValidCNPJ(s)
}
