package hardware

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vettura-project/vettura/pkg/vettura/constants"
)

func TestDetectEnvOverride(t *testing.T) {
	t.Setenv(constants.HardwareEnvVar, "vettura,strada v1.1")

	p := Detect()
	require.Equal(t, "vettura,strada v1.1", p.Model)
	require.True(t, p.IsStrada())
}

func TestIsStrada(t *testing.T) {
	cases := []struct {
		model string
		want  bool
	}{
		{"vettura,strada v1.1", true},
		{"vettura,strada", true},
		{"vettura,devkit", false},
		{"qemu-aarch64", false},
		{"", false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Profile{Model: tc.model}.IsStrada(), "model %q", tc.model)
	}
}

func TestProfileString(t *testing.T) {
	require.Equal(t, "unknown", Profile{}.String())
	require.Equal(t, "vettura,strada v1.1", Profile{Model: "vettura,strada v1.1"}.String())
}
