//go:build amd64 && !purego

package biquad

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
	archregistry "github.com/zeljko94/SimpleEQ2/dsp/filter/biquad/internal/arch/registry"
)

func resetProcessBlockDispatchForTest() {
	processBlockImpl = nil
	kernelName = ""
	processBlockInitOnce = sync.Once{}
}

func TestProcessBlockDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "amd64",
			},
			wantImpl: "generic",
		},
		{
			name: "sse2",
			features: cpu.Features{
				HasSSE2:      true,
				Architecture: "amd64",
			},
			wantImpl: "unroll4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			resetProcessBlockDispatchForTest()
			defer resetProcessBlockDispatchForTest()

			entry := archregistry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}

			sRef := NewSection(lowpassish)
			sGot := NewSection(lowpassish)
			input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}

			ref := make([]float64, len(input))
			for i, x := range input {
				ref[i] = sRef.ProcessSample(x)
			}

			got := append([]float64(nil), input...)
			sGot.ProcessBlock(got)

			if Kernel() != tt.wantImpl {
				t.Fatalf("Kernel()=%q, want %q", Kernel(), tt.wantImpl)
			}
			for i := range got {
				if !almostEqual(got[i], ref[i], 1e-12) {
					t.Fatalf("sample %d: got %.15f want %.15f", i, got[i], ref[i])
				}
			}
		})
	}
}
