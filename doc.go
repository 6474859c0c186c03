package jsondec

// Package jsondec provides:
//
// - Composable decoders turning loosely-typed JSON values into typed Go values
// - A stable error model via Error (path, reason code, message catalog)
// - Navigation and structural combinators (Field/At/Index, List, Dict, OneOf, Object, Union)
// - Reflection-driven decoder synthesis under auto/ with overrides and caching
//
// Design policy:
// - Keep only public APIs in the root package; the root package is the combinator core.
// - Place automatic synthesis under auto/, parse drivers under source/, messages under i18n/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	d := jsondec.Field("user", jsondec.Field("age", jsondec.Int()))
//	age, err := jsondec.DecodeString(d, `{"user":{"age":42}}`)
//
//	type User struct{ Name string; Age int }
//	du := auto.For[User](auto.WithCamelCase())
//	u, err := jsondec.DecodeString(du, `{"name":"ann","age":42}`)
