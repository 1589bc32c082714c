package httpapi

import "testing"

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "empty", header: "", wantErr: true},
		{name: "no scheme", header: "hub_token_1_a@x.edu_abc", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwdw==", wantErr: true},
		{name: "scheme only", header: "Bearer ", wantErr: true},
		{name: "plain", header: "Bearer hub_token_1_a@x.edu_abc", want: "hub_token_1_a@x.edu_abc"},
		{name: "lowercase scheme", header: "bearer tok123", want: "tok123"},
		{name: "surrounding space", header: "  Bearer tok123  ", want: "tok123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractBearerToken(tc.header)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got token %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
