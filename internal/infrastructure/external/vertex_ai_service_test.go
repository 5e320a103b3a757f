package external

import (
	"testing"

	"cloud.google.com/go/vertexai/genai"
)

func TestVertexResponseText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{name: "nil", resp: nil, want: ""},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, want: ""},
		{
			name: "text parts are joined",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{
					genai.Text("shirt: Red\n"),
					genai.Blob{MIMEType: "image/png", Data: []byte{1}},
					genai.Text("gender: Male"),
				}},
			}}},
			want: "shirt: Red\ngender: Male",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vertexResponseText(tt.resp); got != tt.want {
				t.Errorf("vertexResponseText() = %q, want %q", got, tt.want)
			}
		})
	}
}
