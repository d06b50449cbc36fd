package endpoint

import (
	"reflect"
	"runtime"
	"strings"
)

// Info is the identity metadata of a callable. Decorators copy it unchanged
// into the wrappers they return.
type Info struct {
	// Name is the short name, e.g. "greet".
	Name string
	// QualifiedName includes the package path, e.g. "example.com/app.greet".
	QualifiedName string
	// Doc is a free-form description.
	Doc string
}

func (i Info) String() string {
	return i.Name
}

func infoOf(fn any) Info {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return Info{}
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return Info{}
	}
	full := f.Name()
	return Info{Name: shortName(full), QualifiedName: full}
}

// shortName strips the package path from a runtime symbol:
// "github.com/a/b.(*T).M-fm" becomes "(*T).M".
func shortName(full string) string {
	name := full
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
