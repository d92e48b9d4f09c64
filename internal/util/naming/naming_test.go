package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	rg := "MKRSPC-iot-porg"

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "Hub",
			got:      Hub(rg, 42),
			expected: "MKRSPC-iot-porg-00042",
		},
		{
			name:     "Hub max suffix",
			got:      Hub(rg, MaxSuffix),
			expected: "MKRSPC-iot-porg-100000",
		},
		{
			name:     "StorageAccount",
			got:      StorageAccount(7),
			expected: "storage00007",
		},
		{
			name:     "FunctionApp",
			got:      FunctionApp(rg, 12345),
			expected: "MKRSPC-iot-porg-app-12345",
		},
		{
			name:     "Device",
			got:      Device("device", 0),
			expected: "device-0",
		},
		{
			name:     "FunctionKeysPath",
			got:      FunctionKeysPath("sub", rg, "porg-app2", "d1"),
			expected: "/subscriptions/sub/resourceGroups/MKRSPC-iot-porg/providers/Microsoft.Web/sites/porg-app2/functions/d1/listKeys",
		},
		{
			name:     "FunctionKeysPath escapes",
			got:      FunctionKeysPath("sub", "rg", "app", "a b"),
			expected: "/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Web/sites/app/functions/a%20b/listKeys",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s: expected %q, got %q", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestStorageAccountLength(t *testing.T) {
	if got := StorageAccount(MaxSuffix); len(got) > 24 {
		t.Errorf("storage account name %q exceeds 24 characters", got)
	}
}
