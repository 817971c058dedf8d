package smtpcmd

import (
	"fmt"
	"testing"
)

func TestMailParam_String(t *testing.T) {
	tests := []struct {
		name     string
		input    MailParam
		expected string
	}{
		{"body 7bit", BodyParam{Kind: Body7Bit}, "BODY=7BIT"},
		{"body 8bitmime", BodyParam{Kind: Body8BitMIME}, "BODY=8BITMIME"},
		{"size", SizeParam{Size: 1024}, "SIZE=1024"},
		{"size zero", SizeParam{}, "SIZE=0"},
		{"smtputf8", SMTPUTF8Param{}, "SMTPUTF8"},
		{"requiretls", RequireTLSParam{}, "REQUIRETLS"},
		{"ret full", RetParam{Return: DSNReturnFull}, "RET=FULL"},
		{"ret headers", RetParam{Return: DSNReturnHeaders}, "RET=HDRS"},
		{"envid", EnvIDParam{ID: "QQ314159 =x"}, "ENVID=QQ314159+20+3Dx"},
		{"auth null", AuthParam{}, "AUTH=<>"},
		{"auth address", AuthParam{Identity: MustParseMailbox("e+e@example.com")}, "AUTH=e+2Be@example.com"},
		{"flag", NewFlagParam("X-FLAG"), "X-FLAG"},
		{"value", NewValueParam("X-VALUE", "+"), "X-VALUE=+2B"},
		{"empty value", NewValueParam("X-EMPTY", ""), "X-EMPTY="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRcptParam_String(t *testing.T) {
	tests := []struct {
		name     string
		input    RcptParam
		expected string
	}{
		{"notify never", NotifyParam{Notify: []DSNNotify{DSNNotifyNever}}, "NOTIFY=NEVER"},
		{
			"notify list",
			NotifyParam{Notify: []DSNNotify{DSNNotifySuccess, DSNNotifyFailure, DSNNotifyDelay}},
			"NOTIFY=SUCCESS,FAILURE,DELAY",
		},
		{"orcpt default type", ORcptParam{Addr: "a+b@example.com"}, "ORCPT=rfc822;a+2Bb@example.com"},
		{"orcpt utf-8 type", ORcptParam{AddrType: "utf-8", Addr: "x@example.com"}, "ORCPT=utf-8;x@example.com"},
		{"flag", NewFlagParam("X-FLAG"), "X-FLAG"},
		{"value", NewValueParam("X-VALUE", "a=b"), "X-VALUE=a+3Db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOtherParam_Accessors(t *testing.T) {
	p := NewValueParam("X-VALUE", "+")
	if p.Keyword() != "X-VALUE" {
		t.Errorf("Keyword() = %q", p.Keyword())
	}
	if v, ok := p.Value(); !ok || v != "+" {
		t.Errorf("Value() = %q, %v; want unencoded value", v, ok)
	}

	f := NewFlagParam("X-FLAG")
	if _, ok := f.Value(); ok {
		t.Error("flag parameter should have no value")
	}
}

func TestBodyKind_String(t *testing.T) {
	if Body7Bit.String() != "7BIT" || Body8BitMIME.String() != "8BITMIME" {
		t.Errorf("unexpected BodyKind strings %q %q", Body7Bit, Body8BitMIME)
	}
	if got := BodyKind(9).String(); got != "BodyKind(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestBodyParam_InvalidKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid body kind")
		}
	}()
	Render(Mail{Params: []MailParam{BodyParam{Kind: BodyKind(9)}}})
}

func TestDSNParams_InvalidPanics(t *testing.T) {
	tests := []struct {
		name  string
		input fmt.Stringer
	}{
		{"zero RET", RetParam{}},
		{"unknown RET", RetParam{Return: DSNReturn("BODY")}},
		{"zero NOTIFY", NotifyParam{}},
		{"unknown NOTIFY", NotifyParam{Notify: []DSNNotify{"SOMETIMES"}}},
		{"NEVER with others", NotifyParam{Notify: []DSNNotify{DSNNotifyNever, DSNNotifyFailure}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("String() did not panic for %#v", tt.input)
				}
			}()
			_ = tt.input.String()
		})
	}
}
