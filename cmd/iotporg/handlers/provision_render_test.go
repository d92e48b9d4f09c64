package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkrspc/iotporg/internal/config"
	"github.com/mkrspc/iotporg/internal/devices"
	"github.com/mkrspc/iotporg/internal/provisioning"
)

func TestRenderProvisionSummary(t *testing.T) {
	cfg := config.Default()
	st := provisioning.NewState()
	st.SubscriptionID = "sub-1"
	st.HubName = "MKRSPC-iot-porg-00042"
	st.Devices = []devices.Record{
		{DeviceID: "d1", ConnectionString: "HostName=h;DeviceId=d1;SharedAccessKey=" + strings.Repeat("k", 60)},
	}
	st.FunctionApp = "porg-app2"
	st.StorageAccount = "storage00042"
	st.FunctionKeys = []provisioning.FunctionKey{{Device: "d1", Key: "secret-key"}}

	out := renderProvisionSummary(cfg, st)

	assert.Contains(t, out, "provisioning complete")
	assert.Contains(t, out, cfg.ResourceGroup.Name)
	assert.Contains(t, out, "sub-1")
	assert.Contains(t, out, "MKRSPC-iot-porg-00042")
	assert.Contains(t, out, "Devices (1)")
	assert.Contains(t, out, "storage00042")
	assert.Contains(t, out, "secret-key")
	assert.Contains(t, out, config.DefaultDeviceOutputFile)
	assert.NotContains(t, out, strings.Repeat("k", 60))
}

func TestRenderProvisionSummary_OmitsEmptySections(t *testing.T) {
	out := renderProvisionSummary(config.Default(), provisioning.NewState())

	assert.Contains(t, out, "Resource group")
	assert.NotContains(t, out, "IoT Hub")
	assert.NotContains(t, out, "Devices")
	assert.NotContains(t, out, "Function keys")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly10!", truncate("exactly10!", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
