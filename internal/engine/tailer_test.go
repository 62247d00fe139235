package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sifterrors "github.com/livp123/logsift/pkg/errors"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestTailer_StreamsAllLines tests batch-mode streaming to EOF
// TestTailer_StreamsAllLines 测试批处理模式读到文件末尾
func TestTailer_StreamsAllLines(t *testing.T) {
	path := writeInput(t, "one\ntwo\nthree\n")

	tailer := NewTailer()
	require.NoError(t, tailer.Start(path))

	var lines []string
	var numbers []int
	for event := range tailer.Events {
		lines = append(lines, event.Line)
		numbers = append(numbers, event.Number)
		assert.Equal(t, path, event.Source)
	}

	assert.Equal(t, []string{"one", "two", "three"}, lines)
	assert.Equal(t, []int{1, 2, 3}, numbers)
}

// TestTailer_EmptyFile tests that an empty input closes immediately
// TestTailer_EmptyFile 测试空文件立即关闭
func TestTailer_EmptyFile(t *testing.T) {
	path := writeInput(t, "")

	tailer := NewTailer()
	require.NoError(t, tailer.Start(path))

	count := 0
	for range tailer.Events {
		count++
	}
	assert.Equal(t, 0, count)
}

// TestTailer_MissingFile tests the fail-fast setup error
// TestTailer_MissingFile 测试缺失文件的快速失败
func TestTailer_MissingFile(t *testing.T) {
	tailer := NewTailer()
	err := tailer.Start(filepath.Join(t.TempDir(), "absent.log"))
	assert.ErrorIs(t, err, sifterrors.ErrInputNotFound)
}
