//go:build !amd64 || purego

package biquad

import (
	_ "github.com/zeljko94/SimpleEQ2/dsp/filter/biquad/internal/arch/generic"
)
