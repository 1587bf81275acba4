package bx

import "math"

func float64ToInt64(v float64) int64 { return int64(math.Float64bits(v)) }
func int64ToFloat64(v int64) float64 { return math.Float64frombits(uint64(v)) }
