package core

import (
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(250), WithLength(64), nil)
	if cfg.SampleRate != 250 || cfg.Length != 64 {
		t.Fatalf("got %+v", cfg)
	}

	if math.Abs(cfg.SampleInterval()-0.004) > 1e-15 {
		t.Fatalf("SampleInterval = %v", cfg.SampleInterval())
	}

	def := ApplyProcessorOptions(WithSampleRate(-1), WithLength(0))
	if def != DefaultProcessorConfig() {
		t.Fatalf("invalid options should be ignored, got %+v", def)
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(10); math.Abs(got-20) > 1e-12 {
		t.Fatalf("LinearToDB(10) = %v", got)
	}

	if !math.IsInf(LinearToDB(0), -1) || !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("edge cases")
	}

	if got := LinearToDBFloor(0, -120); got != -120 {
		t.Fatalf("floor: %v", got)
	}

	if got := LinearToDBFloor(1, -120); got != 0 {
		t.Fatalf("unity: %v", got)
	}
}
