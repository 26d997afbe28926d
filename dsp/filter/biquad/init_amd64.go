//go:build amd64 && !purego

package biquad

import (
	_ "github.com/zeljko94/SimpleEQ2/dsp/filter/biquad/internal/arch/amd64/unroll" // register unrolled amd64 backend
	_ "github.com/zeljko94/SimpleEQ2/dsp/filter/biquad/internal/arch/generic"      // register generic backend
)
