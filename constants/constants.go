package constants

import (
	"os"
	"strconv"
)

const EnvPrefix = "SCALEDEX"

const DefaultOctave = 4

const DefaultTempo = 120.0

func GetOutDir() string {
	path := os.Getenv("SCALEDEX_OUT_DIR")
	if path != "" {
		return path
	}
	return "./out"
}

func GetOctave() int {
	octave, err := strconv.Atoi(os.Getenv("SCALEDEX_OCTAVE"))
	if err != nil || octave < -1 || octave > 9 {
		return DefaultOctave
	}
	return octave
}

func GetTempo() float64 {
	tempo, err := strconv.ParseFloat(os.Getenv("SCALEDEX_TEMPO"), 64)
	if err != nil || tempo <= 0 {
		return DefaultTempo
	}
	return tempo
}
