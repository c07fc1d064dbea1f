package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavka/internal/repository"
)

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	Chart(&buf, []repository.DateCount{
		{Date: "2026-08-01", Count: 1},
		{Date: "2026-08-02", Count: 4},
	})
	out := buf.String()

	require.Contains(t, out, "2026-08-01")
	require.Contains(t, out, "2026-08-02")

	// столбец максимума занимает всю ширину, остальные — пропорционально
	assert.Contains(t, out, strings.Repeat("#", barWidth))
	assert.Contains(t, out, strings.Repeat("#", barWidth/4))
}

func TestChartEmpty(t *testing.T) {
	var buf bytes.Buffer
	Chart(&buf, nil)

	assert.Contains(t, buf.String(), "DATE")
	assert.NotContains(t, buf.String(), "#")
}

func TestBarScaling(t *testing.T) {
	assert.Equal(t, "", bar(0, 10))
	assert.Equal(t, strings.Repeat("#", barWidth), bar(10, 10))
	// ненулевое значение всегда видно хотя бы одним символом
	assert.Equal(t, "#", bar(1, 1000))
}
