// Package locator binds factories to names so a host application can look
// up services such as the text parser without importing their constructors.
//
// # Basic Usage
//
// Bind the parser under its conventional name and resolve it later:
//
//	l := locator.New()
//	locator.BindParser(l)
//
//	parse, err := locator.Parser(l)
//	if err != nil {
//	    return err
//	}
//	out, err := parse("Hello [name]").Values(values).Parse()
//
// # Fresh and Shared Instances
//
// Bind registers a factory that runs on every Make. Singleton registers a
// factory that runs once; later calls return the same instance:
//
//	l.Bind("clock", func() any { return time.Now() })
//	l.Singleton("renderer", func() any { return NewRenderer() })
//
// The singleton factory is called at most once per name, even under
// concurrent access.
//
// # Thread Safety
//
// All Locator methods are safe for concurrent use.
package locator
