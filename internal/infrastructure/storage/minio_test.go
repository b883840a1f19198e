package storage

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		name     string
		corpus   string
		fileName string
		want     string
		wantErr  bool
	}{
		{name: "plain", corpus: "corpus-1", fileName: "notes.pdf", want: "corpus-1/notes.pdf"},
		{name: "strips directories", corpus: "corpus-1", fileName: "../../etc/passwd", want: "corpus-1/passwd"},
		{name: "windows path", corpus: "/corpus-1/", fileName: `C:\docs\plan.docx`, want: "corpus-1/plan.docx"},
		{name: "empty", corpus: "c", fileName: "", wantErr: true},
		{name: "dot dot", corpus: "c", fileName: "..", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := objectName(tt.corpus, tt.fileName)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileNameFromKey(t *testing.T) {
	assert.Equal(t, "a.pdf", fileNameFromKey("c/", "c/a.pdf"))
	assert.Equal(t, "", fileNameFromKey("c/", "c/folder/"))
	assert.Equal(t, "", fileNameFromKey("c/", "c/sub/x.pdf"))
	assert.Equal(t, "", fileNameFromKey("c/", "c/"))
}

func TestListedNamesAddressTheSameObject(t *testing.T) {
	prefix := corpusPrefix("corpus-1")
	keys := []string{"corpus-1/a.pdf", "corpus-1/q3 plan.docx", "corpus-1/sub/x.pdf", "corpus-1/sub/"}

	for _, key := range keys {
		name := fileNameFromKey(prefix, key)
		if name == "" {
			continue
		}
		// a listed name must delete exactly the object it was listed from
		got, err := objectName("corpus-1", name)
		require.NoError(t, err)
		assert.Equal(t, key, got)
	}
}

func TestReportOrFail(t *testing.T) {
	res, err := reportOrFail(minio.ErrorResponse{Code: "AccessDenied", Message: "Access Denied."})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Access Denied.", res.Error)

	res, err = reportOrFail(errors.New("dial tcp: connection refused"))
	assert.Nil(t, res)
	assert.Error(t, err)
}
