package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snowball/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("info", "json", &buf)
	require.NoError(t, err)

	log.WithFields(logrus.Fields{"sample": 2, "nodes": 17}).Info("sample written")
	log.Debug("dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sample written", entry["msg"])
	assert.Equal(t, float64(17), entry["nodes"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNew_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("debug", "", &buf)
	require.NoError(t, err)
	log.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("loud", "text", nil)
	assert.Error(t, err)
	_, err = logging.New("info", "xml", nil)
	assert.Error(t, err)
}
