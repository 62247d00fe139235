package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIndex(t *testing.T, lines ...string) *Index {
	t.Helper()
	p := NewParser()
	idx := NewIndex()
	for _, line := range lines {
		rec, ok := p.ParseLine(line)
		require.True(t, ok, "test fixture line %q must parse", line)
		idx.Insert(rec)
	}
	return idx
}

// TestAggregate_RangeScenario tests the reference address+time range scenario
// TestAggregate_RangeScenario 测试地址+时间范围的参考场景
func TestAggregate_RangeScenario(t *testing.T) {
	idx := buildIndex(t,
		"10.0.0.1: 2024-01-01 10:00:00",
		"10.0.0.1: 2024-01-02 10:00:00",
		"10.0.0.9: 2024-01-01 10:00:00",
	)

	criteria, err := NewCriteria("10.0.0.1", "10.0.0.5", "01.01.2024", "01.01.2024")
	require.NoError(t, err)

	result := Aggregate(idx, criteria, 1)

	// 10.0.0.9 excluded by address range; one of 10.0.0.1's two timestamps
	// excluded by time range.
	assert.Equal(t, map[string]int{"10.0.0.1": 1}, result)
}

// TestAggregate_ZeroMatchStillEmitted tests count-0 rows for in-range addresses
// TestAggregate_ZeroMatchStillEmitted 测试范围内地址即使无匹配也输出 0
func TestAggregate_ZeroMatchStillEmitted(t *testing.T) {
	idx := buildIndex(t,
		"10.0.0.1: 2020-01-01 10:00:00",
	)

	criteria, err := NewCriteria("10.0.0.1", "10.0.0.5", "01.01.2024", "02.01.2024")
	require.NoError(t, err)

	result := Aggregate(idx, criteria, 1)

	// The address passes the range test, so it appears with count 0 even
	// though no timestamp is inside the window.
	assert.Equal(t, map[string]int{"10.0.0.1": 0}, result)
}

// TestAggregate_EmptyMaskExcludesEverything tests the default-mask caveat
// TestAggregate_EmptyMaskExcludesEverything 测试默认 mask 的边界行为
func TestAggregate_EmptyMaskExcludesEverything(t *testing.T) {
	idx := buildIndex(t,
		"10.0.0.1: 2024-01-01 10:00:00",
		"zeta: 2024-01-01 10:00:00",
	)

	criteria, err := NewCriteria("", "", "01.01.2024", "02.01.2024")
	require.NoError(t, err)

	result := Aggregate(idx, criteria, 1)
	assert.Empty(t, result)
}

// TestAggregate_DuplicatesCounted tests that identical entries count twice
// TestAggregate_DuplicatesCounted 测试完全相同的条目计数两次
func TestAggregate_DuplicatesCounted(t *testing.T) {
	idx := buildIndex(t,
		"10.0.0.1: 2024-01-01 10:00:00",
		"10.0.0.1: 2024-01-01 10:00:00",
	)

	criteria, err := NewCriteria("10.0.0.1", "10.0.0.5", "01.01.2024", "01.01.2024")
	require.NoError(t, err)

	result := Aggregate(idx, criteria, 1)
	assert.Equal(t, map[string]int{"10.0.0.1": 2}, result)
}

// TestAggregate_BoundInclusivity tests both range bounds end to end
// TestAggregate_BoundInclusivity 测试两端边界的包含性
func TestAggregate_BoundInclusivity(t *testing.T) {
	idx := buildIndex(t,
		"10.0.0.1: 2024-01-01 00:00:00", // == TimeStart
		"10.0.0.5: 2024-01-01 23:59:59", // == TimeEnd
		"10.0.0.0: 2024-01-01 10:00:00", // below AddressStart
		"10.0.0.6: 2024-01-01 10:00:00", // above AddressMask
	)

	criteria, err := NewCriteria("10.0.0.1", "10.0.0.5", "01.01.2024", "01.01.2024")
	require.NoError(t, err)

	result := Aggregate(idx, criteria, 1)
	assert.Equal(t, map[string]int{"10.0.0.1": 1, "10.0.0.5": 1}, result)
}

// TestAggregate_EmptyIndex tests that an empty index yields an empty mapping
// TestAggregate_EmptyIndex 测试空索引产生空映射
func TestAggregate_EmptyIndex(t *testing.T) {
	criteria, err := NewCriteria("", "\xff", "01.01.2024", "01.01.2024")
	require.NoError(t, err)

	result := Aggregate(NewIndex(), criteria, 1)
	assert.Empty(t, result)
}

// TestAggregate_ParallelMatchesSequential tests worker-pool equivalence
// TestAggregate_ParallelMatchesSequential 测试并行与串行结果一致
func TestAggregate_ParallelMatchesSequential(t *testing.T) {
	idx := NewIndex()
	for i := 0; i < 500; i++ {
		addr := fmt.Sprintf("10.0.%d.%d", i%4, i%32)
		hour := 8 + i%12
		idx.Insert(Record{
			Address:   addr,
			Timestamp: mustTime(t, fmt.Sprintf("2024-01-01 %02d:00:00", hour)),
		})
	}

	criteria, err := NewCriteria("10.0.0.0", "10.0.3.9", "01.01.2024", "01.01.2024")
	require.NoError(t, err)

	sequential := Aggregate(idx, criteria, 1)
	for _, workers := range []int{2, 4, 16, 1000} {
		t.Run(fmt.Sprintf("Workers=%d", workers), func(t *testing.T) {
			assert.Equal(t, sequential, Aggregate(idx, criteria, workers))
		})
	}
}
