package system

import "testing"

func TestHostString(t *testing.T) {
	tests := []struct {
		name string
		host Host
		want string
	}{
		{
			name: "full platform",
			host: Host{Hostname: "web-1", OS: "linux", Platform: "ubuntu", PlatformVersion: "24.04", CPUs: 4, MemTotal: 8 << 30},
			want: "web-1 (ubuntu 24.04, 4 CPUs, 8.0 GiB RAM)",
		},
		{
			name: "falls back to os",
			host: Host{Hostname: "box", OS: "darwin", CPUs: 8, MemTotal: 512 << 20},
			want: "box (darwin, 8 CPUs, 512.0 MiB RAM)",
		},
		{
			name: "tiny memory",
			host: Host{Hostname: "x", OS: "linux", CPUs: 1, MemTotal: 900},
			want: "x (linux, 1 CPUs, 900 B RAM)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.host.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	h, err := Describe()
	if err != nil {
		t.Skipf("host information unavailable: %v", err)
	}
	if h.CPUs < 1 {
		t.Errorf("CPUs = %d, want at least 1", h.CPUs)
	}
	if h.MemTotal == 0 {
		t.Error("MemTotal = 0")
	}
}
