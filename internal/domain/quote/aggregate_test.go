package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() []LineItem {
	return []LineItem{
		NewLineItem("Cable tray", d("2"), d("100"), d("10"), d("18")),
		NewLineItem("Site survey", d("1"), d("0"), d("0"), d("18")),
		NewLineItem("Junction box", d("1"), d("50"), d("0"), d("18")),
	}
}

func TestAggregate(t *testing.T) {
	items := sampleItems()
	require.Equal(t, "212.40", items[0].TotalPrice.StringFixed(2))
	require.Equal(t, "0.00", items[1].TotalPrice.StringFixed(2))
	require.Equal(t, "59.00", items[2].TotalPrice.StringFixed(2))

	got := Aggregate(items)
	assert.Equal(t, "250.00", got.SubTotal.StringFixed(2))
	assert.Equal(t, "41.40", got.TotalTax.StringFixed(2))
	assert.Equal(t, "271.40", got.GrandTotal.StringFixed(2))
}

func TestAggregateEmpty(t *testing.T) {
	for _, items := range [][]LineItem{nil, {}} {
		got := Aggregate(items)
		assert.True(t, got.SubTotal.IsZero())
		assert.True(t, got.TotalTax.IsZero())
		assert.True(t, got.GrandTotal.IsZero())
	}
}

func TestAggregateIsAdditive(t *testing.T) {
	items := append(sampleItems(),
		NewLineItem("Conduit", d("12"), d("17.45"), d("2.5"), d("12")),
		NewLineItem("Labour", d("8"), d("249.95"), d("0"), d("28")),
	)
	whole := Aggregate(items)
	for split := 0; split <= len(items); split++ {
		parts := Aggregate(items[:split]).Add(Aggregate(items[split:]))
		assert.True(t, whole.SubTotal.Equal(parts.SubTotal), "split %d", split)
		assert.True(t, whole.TotalTax.Equal(parts.TotalTax), "split %d", split)
		assert.True(t, whole.GrandTotal.Equal(parts.GrandTotal), "split %d", split)
	}
}

func TestQuoteMutationsKeepTotalsCurrent(t *testing.T) {
	var q Quote
	for _, it := range sampleItems() {
		q.AddItem(it)
	}
	assert.Equal(t, "271.40", q.Totals.GrandTotal.StringFixed(2))

	t.Run("replace", func(t *testing.T) {
		require.NoError(t, q.ReplaceItem(1, LineItem{Name: "Site survey", Quantity: d("1"), UnitRate: d("500"), GSTPercent: d("18")}))
		assert.Equal(t, "590.00", q.Items[1].TotalPrice.StringFixed(2))
		assert.Equal(t, "861.40", q.Totals.GrandTotal.StringFixed(2))
	})

	t.Run("move", func(t *testing.T) {
		require.NoError(t, q.MoveItem(2, 0))
		assert.Equal(t, []string{"Junction box", "Cable tray", "Site survey"}, names(q.Items))
		assert.Equal(t, "861.40", q.Totals.GrandTotal.StringFixed(2))
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, q.RemoveItem(2))
		assert.Equal(t, []string{"Junction box", "Cable tray"}, names(q.Items))
		assert.Equal(t, "250.00", q.Totals.SubTotal.StringFixed(2))
		assert.Equal(t, "41.40", q.Totals.TotalTax.StringFixed(2))
		assert.Equal(t, "271.40", q.Totals.GrandTotal.StringFixed(2))
	})

	t.Run("out of range", func(t *testing.T) {
		assert.Error(t, q.RemoveItem(5))
		assert.Error(t, q.ReplaceItem(-1, LineItem{}))
		assert.Error(t, q.MoveItem(0, 2))
	})

	t.Run("direct edit then recalculate", func(t *testing.T) {
		q.Items[0].Quantity = d("2")
		q.Recalculate()
		assert.Equal(t, "118.00", q.Items[0].TotalPrice.StringFixed(2))
		assert.Equal(t, "330.40", q.Totals.GrandTotal.StringFixed(2))
	})
}

func names(items []LineItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}
