package macro

import (
	"fmt"
	"regexp"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 常量与错误
// ═══════════════════════════════════════════════════════════════════════════

// MaxRecursion 单次 [Resolve] 调用允许的最大替换步数。
//
// 原则上可以做环检测（A=$(B)、B=$(A)），但步数上限实现更简单，
// 且对正常输入完全够用。
const MaxRecursion = 100

// NamePattern 宏名校验正则。
//
// 不匹配该正则的宏名不查询 Provider，其 token 原样保留在输出中。
// 宿主系统可在初始化阶段替换为自己的命名规则。
var NamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RecursionError 表示替换步数超过 [MaxRecursion]。
//
// Text 为失败时正在处理的文本，用于定位循环定义。
type RecursionError struct {
	Text string
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("macro: recursion limit %d exceeded resolving %q", MaxRecursion, e.Text)
}

// ═══════════════════════════════════════════════════════════════════════════
// 括号匹配
// ═══════════════════════════════════════════════════════════════════════════

// FindClosingBrace 返回 pos 处 '(' 或 '{' 对应的闭括号下标。
//
// 规则：
//   - '\' 转义自身和下一个字符
//   - 两种括号可任意混合嵌套，嵌套对先行闭合
//   - pos 越界、pos 处不是开括号、或没有闭括号时返回 -1
func FindClosingBrace(input string, pos int) int {
	n := len(input)
	if pos < 0 || pos >= n {
		return -1
	}

	var closing byte
	switch input[pos] {
	case '(':
		closing = ')'
	case '{':
		closing = '}'
	default:
		return -1
	}

	for pos++; pos < n; pos++ {
		c := input[pos]
		if c == '\\' {
			pos++

			continue
		}
		if c == closing {
			return pos
		}
		if c == '(' || c == '{' {
			pos = FindClosingBrace(input, pos)
			if pos < 0 {
				return -1
			}
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// Token 分解
// ═══════════════════════════════════════════════════════════════════════════

// decomposed 一次扫描的结果。
//
// hasName 为 false 表示 from 之后没有语法完整的 token，
// 此时 def 携带整段输入，供调用方直接作为终态返回。
type decomposed struct {
	name       string
	def        string
	hasName    bool
	hasDefault bool
	start      int // '$' 的下标
	end        int // 闭括号的下标
}

// decompose 从 from 开始查找下一个未转义的 $(..) 或 ${..}。
//
// 转义判断只回看一个字符：'$' 前紧邻 '\' 即视为转义。
// token 体内第一个 '='（非首字符）切分宏名与默认值，两侧都去除首尾空白。
func decompose(input string, from int) decomposed {
	var d decomposed

	start := indexDollar(input, from)
	for start > 0 && input[start-1] == '\\' {
		start = indexDollar(input, start+1)
	}

	if start < 0 || start+1 >= len(input) {
		d.def, d.hasDefault = input, true

		return d
	}

	end := FindClosingBrace(input, start+1)
	if end < 0 {
		d.def, d.hasDefault = input, true

		return d
	}

	body := input[start+2 : end]
	if sep := strings.IndexByte(body, '='); sep > 0 {
		d.name = strings.TrimSpace(body[:sep])
		d.def = strings.TrimSpace(body[sep+1:])
		d.hasDefault = true
	} else {
		d.name = body
	}
	d.hasName = true
	d.start, d.end = start, end

	return d
}

func indexDollar(input string, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= len(input) {
		return -1
	}
	i := strings.IndexByte(input[from:], '$')
	if i < 0 {
		return -1
	}

	return from + i
}

// ═══════════════════════════════════════════════════════════════════════════
// 替换
// ═══════════════════════════════════════════════════════════════════════════

// ContainsMacros 判断文本是否可能含有宏。
//
// 只检查 '$' 是否存在（含转义形式），是廉价的前置过滤，不做语法校验。
func ContainsMacros(input string) bool {
	return strings.IndexByte(input, '$') >= 0
}

// Resolve 展开 input 中所有可解析的宏。
//
// 语义：
//   - Provider 有值则替换为值；无值但 token 带默认值则替换为默认值
//   - 名字非法或既无值也无默认值的 token 原样保留
//   - Provider 的值恰好是对同名宏的再引用时，使用调用处的默认值（见 [ValueProvider]）
//   - 全部替换完成后，"\$" 还原为字面 '$'
//
// 唯一的失败情形是循环定义导致步数超过 [MaxRecursion]，
// 此时返回 [RecursionError]，不返回部分结果。
func Resolve(provider ValueProvider, input string) (string, error) {
	resolved, err := resolve(provider, input)
	if err != nil {
		return "", err
	}

	return strings.ReplaceAll(resolved, `\$`, "$"), nil
}

// resolve 是替换主循环，每轮处理一个 token。
//
// 成功替换后回到下标 0 重扫：拼接可能暴露新的嵌套 token，
// 且旧文本里的下标在拼接后已失效。跳过 token 时只前进到 start+2，
// 避免在同一 token 上原地打转。
func resolve(provider ValueProvider, input string) (string, error) {
	text := input
	from := 0

	for step := 0; ; step++ {
		if step > MaxRecursion {
			return "", &RecursionError{Text: text}
		}

		d := decompose(text, from)
		if !d.hasName {
			return text, nil
		}

		if !NamePattern.MatchString(d.name) {
			from = d.start + 2

			continue
		}

		value, found := provider.Lookup(d.name)

		if found {
			// 值本身是 $(NAME) 形式的自引用：用调用处默认值顶替，
			// 不再向 Provider 查询同名宏
			vd := decompose(value, 0)
			if vd.hasName && vd.name == d.name {
				if d.hasDefault {
					text = d.def
				} else {
					text = value
				}
				from = 0

				continue
			}
		}

		if found || d.hasDefault {
			replacement := value
			if !found {
				replacement = d.def
			}
			text = text[:d.start] + replacement + text[d.end+1:]
			from = 0

			continue
		}

		// 查不到值也没有默认值：token 保留，继续处理后面的文本
		from = d.start + 2
	}
}

// Names 返回文本中出现的、通过 [NamePattern] 校验的宏名（去重，按出现顺序）。
//
// 嵌套在默认值里的宏名同样会被列出。不查询 Provider，仅做语法扫描。
func Names(input string) []string {
	var names []string
	seen := make(map[string]bool)

	from := 0
	for {
		d := decompose(input, from)
		if !d.hasName {
			return names
		}
		if NamePattern.MatchString(d.name) && !seen[d.name] {
			seen[d.name] = true
			names = append(names, d.name)
		}
		from = d.start + 2
	}
}
