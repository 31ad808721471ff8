package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(false, false, &buf)

	logger.Info("placed a subnet", "network", "192.168.0.0/26")

	output := buf.String()
	if !strings.Contains(output, "placed a subnet") {
		t.Errorf("expected 'placed a subnet' in output, got: %s", output)
	}
	if strings.Contains(output, "{") {
		t.Errorf("expected text output, got: %s", output)
	}
}

func TestSetupJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(false, true, &buf)

	logger.Info("placed a subnet", "network", "192.168.0.0/26")

	output := buf.String()
	if !strings.Contains(output, "{") {
		t.Errorf("expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "192.168.0.0/26") {
		t.Errorf("expected the network attribute in output, got: %s", output)
	}
}

func TestSetupVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(true, false, &buf)

	logger.Debug("sizing requirements")

	if !strings.Contains(buf.String(), "sizing requirements") {
		t.Errorf("debug record should appear in verbose mode, got: %s", buf.String())
	}
}

func TestSetupNonVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(false, false, &buf)

	logger.Debug("sizing requirements")

	if strings.Contains(buf.String(), "sizing requirements") {
		t.Errorf("debug record should not appear outside verbose mode, got: %s", buf.String())
	}
}

func TestSetupNilWriter(t *testing.T) {
	Setup(false, false, nil)

	if Logger == nil {
		t.Error("Logger should not be nil after Setup with a nil writer")
	}
}
