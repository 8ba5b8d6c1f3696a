package cfload

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// ExampleYAML 根据配置结构体生成带注释的 YAML 示例。
//
// 字段注释取自 desc tag，嵌套段前空行分隔。适合写入 config.example.yaml。
func ExampleYAML(defaults any) []byte {
	var b strings.Builder
	b.WriteString("# 配置示例文件, 复制此文件为 config.yaml 并根据需要修改\n")
	writeExampleFields(&b, reflect.ValueOf(defaults), 0)

	return []byte(b.String())
}

func writeExampleFields(b *strings.Builder, val reflect.Value, indent int) {
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	pad := strings.Repeat(" ", indent)
	for i := range typ.NumField() {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		key := fieldKey(field)
		if key == "" {
			continue
		}
		desc := field.Tag.Get("desc")

		if isNested(field.Type) {
			b.WriteString("\n")
			if desc != "" {
				fmt.Fprintf(b, "%s# %s\n", pad, desc)
			}
			fmt.Fprintf(b, "%s%s:\n", pad, key)
			writeExampleFields(b, val.Field(i), indent+2)

			continue
		}

		fmt.Fprintf(b, "%s%s: %s", pad, key, renderScalar(val.Field(i)))
		if desc != "" {
			fmt.Fprintf(b, " # %s", desc)
		}
		b.WriteString("\n")
	}
}

// renderScalar 渲染叶子字段的示例值。
func renderScalar(val reflect.Value) string {
	if val.Type() == durationType {
		return val.Interface().(time.Duration).String()
	}

	switch val.Kind() {
	case reflect.String:
		return "'" + val.String() + "'"
	case reflect.Map:
		if val.Len() == 0 {
			return "{}"
		}
		if val.Type().Key().Kind() != reflect.String {
			return fmt.Sprintf("%v", val.Interface())
		}
		keys := make([]string, 0, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().String())
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			kv := reflect.ValueOf(k).Convert(val.Type().Key())
			items[i] = fmt.Sprintf("%s: %s", k, renderScalar(val.MapIndex(kv)))
		}

		return "{" + strings.Join(items, ", ") + "}"
	case reflect.Slice:
		if val.Len() == 0 {
			return "[]"
		}
		items := make([]string, val.Len())
		for i := range val.Len() {
			items[i] = renderScalar(val.Index(i))
		}

		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprintf("%v", val.Interface())
	}
}

// MarshalJSON 把配置结构体渲染为缩进 JSON。
func MarshalJSON(defaults any) []byte {
	out, err := json.MarshalIndent(defaults, "", "  ")
	if err != nil {
		return nil
	}

	return out
}
