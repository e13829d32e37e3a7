package content

import "strconv"

// num formats a coordinate or color component for operator text. It uses
// the shortest decimal form that round-trips, so whole numbers print
// without a fraction and hex-derived color channels keep full precision.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
