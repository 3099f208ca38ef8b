package application

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/checkers-backend/internal/config"
	"github.com/rocketscienceinc/checkers-backend/testing/suite"
)

func TestRun(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a config with custom markers and a scripted session
	conf := &config.Config{
		LogLevel: "debug",
		Prompt:   "",
		Markers:  config.Markers{Empty: ".", Player1: "w", Player2: "b"},
	}
	var out bytes.Buffer

	// When: the app runs to EOF
	err := Run(ctx, st.Logger, conf, strings.NewReader("new\nmove 5,1 4,0\n"), &out)

	// Then: the board is drawn with the configured markers after the move
	require.NoError(t, err)
	assert.Contains(t, out.String(), " 0 | b | . | b | . | b | . | b | . |")
	assert.Contains(t, out.String(), " 4 | w | . | . | . | . | . | . | . |")
}
