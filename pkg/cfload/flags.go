package cfload

import (
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"
)

// applyFlags 把用户显式设置的 CLI flags 写入配置 map。
//
// flag 名由配置 key 的 "." 替换为 "-" 得到，例如 expand.strict → --expand-strict。
func applyFlags(cmd *cli.Command, merged map[string]any, defaults any) {
	applyFlagsRecursive(cmd, merged, reflect.TypeOf(defaults), "")
}

func applyFlagsRecursive(cmd *cli.Command, merged map[string]any, typ reflect.Type, prefix string) {
	if typ == nil {
		return
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := fieldKey(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isNested(field.Type) {
			applyFlagsRecursive(cmd, merged, field.Type, key)

			continue
		}

		flag := strings.ReplaceAll(key, ".", "-")
		if !cmd.IsSet(flag) {
			continue
		}
		setFlagValue(cmd, merged, key, flag, field.Type)
	}
}

// setFlagValue 按字段类型读取 flag 值并写入配置 map。
//
// 支持常用类型；不支持的类型忽略（仍可经配置文件设置）。
func setFlagValue(cmd *cli.Command, merged map[string]any, key, flag string, fieldType reflect.Type) {
	if fieldType == durationType {
		setByPath(merged, key, cmd.Duration(flag))

		return
	}

	switch fieldType.Kind() {
	case reflect.String:
		setByPath(merged, key, cmd.String(flag))
	case reflect.Bool:
		setByPath(merged, key, cmd.Bool(flag))
	case reflect.Int:
		setByPath(merged, key, cmd.Int(flag))
	case reflect.Int64:
		setByPath(merged, key, cmd.Int64(flag))
	case reflect.Uint:
		setByPath(merged, key, cmd.Uint(flag))
	case reflect.Float64:
		setByPath(merged, key, cmd.Float64(flag))
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			setByPath(merged, key, cmd.StringSlice(flag))
		}
	case reflect.Map:
		if fieldType.Key().Kind() == reflect.String && fieldType.Elem().Kind() == reflect.String {
			setByPath(merged, key, cmd.StringMap(flag))
		}
	default:
		// 忽略
	}
}
