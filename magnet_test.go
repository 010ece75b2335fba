package ktorrent_test

import (
	"testing"

	"github.com/fwojciec/ktorrent"
	"github.com/stretchr/testify/assert"
)

func TestParseMagnet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{
			name:  "plain magnet href",
			in:    "magnet:?xt=urn:btih:27646d3df274ed51b6386bd6aa40da849a73b341",
			want:  "magnet:?xt=urn:btih:27646d3df274ed51b6386bd6aa40da849a73b341",
			found: true,
		},
		{
			name:  "onclick handler",
			in:    "file_download('magnet:?xt=urn:btih:27646d3df274ed51b6386bd6aa40da849a73b341')",
			want:  "magnet:?xt=urn:btih:27646d3df274ed51b6386bd6aa40da849a73b341",
			found: true,
		},
		{
			name:  "padded cell text",
			in:    "\n\t magnet:?xt=urn:btih:faa1e90dfae142711ece9d8fe236a738003496e8 \n",
			want:  "magnet:?xt=urn:btih:faa1e90dfae142711ece9d8fe236a738003496e8",
			found: true,
		},
		{
			name:  "magnet with trackers",
			in:    "magnet:?xt=urn:btih:53eccf3d953162d55ecbd698558beb927767a264&dn=show&tr=udp://t.example:80",
			want:  "magnet:?xt=urn:btih:53eccf3d953162d55ecbd698558beb927767a264&dn=show&tr=udp://t.example:80",
			found: true,
		},
		{
			name:  "bare info hash",
			in:    "Info Hash: CBED3A226963BBA284CC056A4EE2E1257FF71725",
			want:  "magnet:?xt=urn:btih:cbed3a226963bba284cc056a4ee2e1257ff71725",
			found: true,
		},
		{
			name: "download link",
			in:   "/bbs/download.php?bo_table=enter&wr_id=21575&no=0",
		},
		{
			name: "empty",
			in:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ktorrent.ParseMagnet(tt.in)

			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
