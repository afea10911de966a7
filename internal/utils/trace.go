// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

// MaxTraceIDLength caps client supplied trace ids before they reach the logs.
const MaxTraceIDLength = 128

// ValidTraceID accepts non-empty ids of printable ASCII within
// MaxTraceIDLength. Both transports use it for caller supplied ids.
func ValidTraceID(id string) bool {
	if id == "" || len(id) > MaxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
