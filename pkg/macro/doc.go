// Package macro 提供 $(NAME) / ${NAME} 形式的文本宏替换。
//
// 宏值来源通过 [ValueProvider] 注入，引擎本身不持有任何状态，
// 同一输入加同一来源的解析结果是确定的，可安全并发调用。
//
// # 语法
//
//   - $(NAME) 或 ${NAME} - 宏引用，两种括号可混合嵌套
//   - $(NAME=default) - 带默认值，NAME 无定义时使用 default
//   - default 部分可以再包含宏引用
//   - "\$" - 字面 '$'，不触发替换，最终输出还原为 '$'
//
// # 语义说明
//
//  1. 查不到值且无默认值的 token 原样保留，不视为错误
//  2. 名字不符合 [NamePattern] 的 token 原样保留
//  3. 值为同名自引用（NAME → "$(NAME)"）时，调用处默认值生效
//  4. 循环定义（A=$(B)、B=$(A)）在 [MaxRecursion] 步后以 [RecursionError] 失败
//
// # 快速开始
//
// 使用内存宏表展开字符串：
//
//	p := macro.MapProvider{"HOST": "db01"}
//	out, err := macro.Resolve(p, "addr: $(HOST):$(PORT=5432)")
//	// out == "addr: db01:5432"
//
// 组合多个来源（先命中者生效）：
//
//	p := macro.Chain(macro.MapProvider{...}, macro.EnvProvider{})
//
// 详见 [Resolve] 文档。
package macro
