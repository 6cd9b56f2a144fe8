// Package template compiles string patterns with named or positional
// placeholders into reusable substitution values.
//
// A pattern is parsed once. The compiled value owns a copy of the pattern,
// never changes afterwards, and takes its variables fresh on every call, so
// one compiled template can serve many goroutines.
//
// # Named Placeholders
//
// Named placeholders have the exact form "{ key }", with one space after the
// opening brace and one before the closing brace:
//
//	t := template.Compile("https://api.com/{ user_id }/products/{ product_id }")
//	t.Execute(map[string]string{"user_id": "85", "product_id": "23"})
//	// "https://api.com/85/products/23"
//
// "{key}" and "{  key  }" are not placeholders and are copied as they are.
//
// # Positional Placeholders
//
// Positional placeholders have the form "{N}" with N counting from 1:
//
//	p := template.CompilePositional("https://api.com/{1}/products/{2}?by={1}")
//	p.Execute([]string{"85", "23"})
//	// "https://api.com/85/products/23?by=85"
//
// # Missing Values
//
// Execute never fails. A placeholder with no value is written back as it
// appears in the pattern. ExecuteStrict reports it as ErrVariable instead:
//
//	_, err := t.ExecuteStrict(map[string]string{"user_id": "85"})
//	// errors.Is(err, template.ErrVariable) == true
//
// Keys, Missing, Indexes and MaxIndex inspect the placeholders without
// executing the template.
//
// # Function Values
//
// Func returns the compiled template as a plain function, for callers that
// only need the substitution:
//
//	render := template.Compile("Hello, { name }!").Func()
//	render(map[string]string{"name": "World"}) // "Hello, World!"
package template
