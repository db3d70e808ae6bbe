package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_deployEnv(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: "DEV"},
		{raw: "  ", want: "DEV"},
		{raw: "TEST", want: "TEST"},
		{raw: "test", want: "TEST"},
		{raw: "prod", want: "PROD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deployEnv(tt.raw), "raw=%q", tt.raw)
	}
}

func TestConf_defaults(t *testing.T) {
	assert.Equal(t, ":8050", Conf.GetString("address"))
	assert.Equal(t, Conf.GetString("env") == "TEST", Conf.GetBool("testMode"))
}
