package datagen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/denizgursoy/senaryo/internal/models"
)

// FormatValue renders a generated value the way it is written in a test
// case. Numbers are bare; texts, dates and times are quoted.
func FormatValue(v any, vt models.ValueType) string {
	switch x := v.(type) {
	case nil:
		return `""`
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return quoteValue(x.Format(layoutOf(vt)))
	case string:
		return quoteValue(x)
	}
	return quoteValue(fmt.Sprint(v))
}

func layoutOf(vt models.ValueType) string {
	switch vt {
	case models.ValueTypeTime:
		return models.TimeLayout
	case models.ValueTypeDateTime:
		return models.DateTimeLayout
	}
	return models.DateLayout
}

func quoteValue(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
