package utils

import (
	"net"
	"testing"
)

func TestContainsNonASCII(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
		{
			name:     "pure ASCII lowercase",
			input:    "hello world",
			expected: false,
		},
		{
			name:     "pure ASCII with numbers",
			input:    "hello123world",
			expected: false,
		},
		{
			name:     "pure ASCII with symbols",
			input:    "hello!@#$%^&*()_+-=",
			expected: false,
		},
		{
			name:     "email address",
			input:    "user@example.com",
			expected: false,
		},
		{
			name:     "ASCII with newlines",
			input:    "hello\r\nworld",
			expected: false,
		},
		{
			name:     "ASCII with tabs",
			input:    "hello\tworld",
			expected: false,
		},
		{
			name:     "single non-ASCII character",
			input:    "ä",
			expected: true,
		},
		{
			name:     "UTF-8 umlaut",
			input:    "hello wörld",
			expected: true,
		},
		{
			name:     "UTF-8 emoji",
			input:    "hello 👋",
			expected: true,
		},
		{
			name:     "Chinese characters",
			input:    "你好",
			expected: true,
		},
		{
			name:     "mixed ASCII and UTF-8",
			input:    "hello世界",
			expected: true,
		},
		{
			name:     "international email-like",
			input:    "user@exämple.com",
			expected: true,
		},
		{
			name:     "high ASCII byte string",
			input:    string([]byte{0x80}),
			expected: true,
		},
		{
			name:     "boundary ASCII (127)",
			input:    string([]byte{127}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ContainsNonASCII(tt.input)
			if result != tt.expected {
				t.Errorf("ContainsNonASCII(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestAddrFromNetAddr(t *testing.T) {
	tests := []struct {
		name        string
		addr        net.Addr
		expected    string
		expectError bool
	}{
		{
			name:        "nil address",
			addr:        nil,
			expected:    "",
			expectError: true,
		},
		{
			name:        "TCP IPv4 address",
			addr:        &net.TCPAddr{IP: net.ParseIP("192.168.1.1"), Port: 25},
			expected:    "192.168.1.1",
			expectError: false,
		},
		{
			name:        "TCP IPv6 address",
			addr:        &net.TCPAddr{IP: net.ParseIP("::1"), Port: 25},
			expected:    "::1",
			expectError: false,
		},
		{
			name:        "TCP IPv4 loopback",
			addr:        &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 587},
			expected:    "127.0.0.1",
			expectError: false,
		},
		{
			name:        "UDP address",
			addr:        &net.UDPAddr{IP: net.ParseIP("10.0.0.1"), Port: 53},
			expected:    "10.0.0.1",
			expectError: false,
		},
		{
			name:        "IP address",
			addr:        &net.IPAddr{IP: net.ParseIP("8.8.8.8")},
			expected:    "8.8.8.8",
			expectError: false,
		},
		{
			name:        "IPv4-mapped IPv6 is unmapped",
			addr:        &net.TCPAddr{IP: net.ParseIP("::ffff:192.0.2.7"), Port: 25},
			expected:    "192.0.2.7",
			expectError: false,
		},
		{
			name:        "empty IP",
			addr:        &net.TCPAddr{Port: 25},
			expected:    "",
			expectError: true,
		},
		{
			name:        "IPv6 full address",
			addr:        &net.TCPAddr{IP: net.ParseIP("2001:db8::1"), Port: 25},
			expected:    "2001:db8::1",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := AddrFromNetAddr(tt.addr)
			if tt.expectError {
				if err == nil {
					t.Errorf("AddrFromNetAddr() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("AddrFromNetAddr() unexpected error: %v", err)
				return
			}
			if addr.String() != tt.expected {
				t.Errorf("AddrFromNetAddr() = %v, want %v", addr.String(), tt.expected)
			}
		})
	}
}

// mockAddr implements net.Addr for testing the fallback path
type mockAddr struct {
	network string
	str     string
}

func (m mockAddr) Network() string { return m.network }
func (m mockAddr) String() string  { return m.str }

func TestAddrFromNetAddr_FallbackPath(t *testing.T) {
	tests := []struct {
		name        string
		addr        net.Addr
		expected    string
		expectError bool
	}{
		{
			name:        "string with host:port",
			addr:        mockAddr{network: "tcp", str: "192.168.1.100:25"},
			expected:    "192.168.1.100",
			expectError: false,
		},
		{
			name:        "string with IPv6 host:port",
			addr:        mockAddr{network: "tcp", str: "[::1]:25"},
			expected:    "::1",
			expectError: false,
		},
		{
			name:        "invalid address string",
			addr:        mockAddr{network: "tcp", str: "not-an-ip"},
			expected:    "",
			expectError: true,
		},
		{
			name:        "just IP without port",
			addr:        mockAddr{network: "tcp", str: "10.0.0.1"},
			expected:    "10.0.0.1",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := AddrFromNetAddr(tt.addr)
			if tt.expectError {
				if err == nil {
					t.Errorf("AddrFromNetAddr() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("AddrFromNetAddr() unexpected error: %v", err)
				return
			}
			if addr.String() != tt.expected {
				t.Errorf("AddrFromNetAddr() = %v, want %v", addr.String(), tt.expected)
			}
		})
	}
}
