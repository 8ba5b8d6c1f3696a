package cfload

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

var durationType = reflect.TypeFor[time.Duration]()

// fieldKey 取字段的配置 key（json tag 的首段），无 tag 或 "-" 返回空。
func fieldKey(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}

	return name
}

// isNested 判断字段是否按嵌套配置段处理（time.Duration 按标量处理）。
func isNested(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType
}

// structToMap 按 json tag 把配置结构体转为嵌套 map。
func structToMap(cfg any) map[string]any {
	val := reflect.ValueOf(cfg)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return map[string]any{}
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return map[string]any{}
	}

	out := make(map[string]any)
	typ := val.Type()
	for i := range typ.NumField() {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		key := fieldKey(field)
		if key == "" {
			continue
		}

		if isNested(field.Type) {
			out[key] = structToMap(val.Field(i).Interface())
		} else {
			out[key] = val.Field(i).Interface()
		}
	}

	return out
}

// scalarKeys 收集可由环境变量覆盖的叶子 key（点号路径）。
//
// 只收集标量字段：map/slice 无法由单个环境变量表达，跳过。
func scalarKeys(cfg any) []string {
	var keys []string
	collectScalarKeys(reflect.TypeOf(cfg), "", &keys)

	return keys
}

func collectScalarKeys(typ reflect.Type, prefix string, keys *[]string) {
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

		switch {
		case isNested(field.Type):
			collectScalarKeys(field.Type, key, keys)
		case field.Type.Kind() == reflect.Map || field.Type.Kind() == reflect.Slice:
			// 跳过
		default:
			*keys = append(*keys, key)
		}
	}
}

// envBindings 由配置 key 生成环境变量名映射。
//
// 规则："." 和 "-" 转为 "_"，转大写，加前缀。
func envBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

// parseBytes 按扩展名选择解析器（.json 用 JSON，其余按 YAML）。
func parseBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return map[string]any{}, nil
	}
	normalized, ok := normalizeKeys(raw).(map[string]any)
	if !ok {
		return nil, errors.New("config root must be a mapping")
	}

	return normalized, nil
}

// normalizeKeys 把 map[any]any 统一为 map[string]any，便于合并。
func normalizeKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = normalizeKeys(v)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[fmt.Sprintf("%v", k)] = normalizeKeys(v)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

// mergeMaps 把 src 深合并进 dst，同 key 的嵌套段递归合并，标量覆盖。
func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, srcMap)

				continue
			}
		}
		dst[key] = value
	}
}

// setByPath 按点号路径写入嵌套 map，中间段不存在时创建。
func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// decode 把合并后的 map 解码到配置结构体。
func decode(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
