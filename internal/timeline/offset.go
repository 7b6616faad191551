package timeline

import (
	"math"
	"strconv"
	"strings"
)

// ParseOffset convertit la valeur saisie (ex: "20", " ２０ ", "-5") en secondes.
// Les chiffres et signes pleine chasse sont acceptés.
func ParseOffset(s string) (int, error) {
	v := strings.TrimSpace(Normalize(s, true))
	if v == "" {
		return 0, &OffsetError{Input: s, Err: errEmptyOffset}
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, &OffsetError{Input: s, Err: err}
	}
	return int(n), nil
}

// OffsetFromFloat valide un offset reçu sous forme numérique (JSON, YAML...).
func OffsetFromFloat(f float64) (int, error) {
	in := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &OffsetError{Input: in, Err: errNotFinite}
	}
	if f != math.Trunc(f) {
		return 0, &OffsetError{Input: in, Err: errNotWholeNumber}
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, &OffsetError{Input: in, Err: strconv.ErrRange}
	}
	return int(f), nil
}
