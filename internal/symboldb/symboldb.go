// Package symboldb implements the on-disk package/symbol database the
// compiler pass consults to resolve names that are not visible in the
// current compilation unit (§4.7.2, §6.3): a name→{package→{element→
// {type,filename,line}}} JSON store with exact and glob lookup.
package symboldb

import (
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/match"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/go-as2js/as2js/internal/diag"
	"github.com/go-as2js/as2js/internal/position"
)

// Element is one package member's recorded metadata.
type Element struct {
	Type     string
	Filename string
	Line     int
}

// Package maps element name to its recorded metadata.
type Package map[string]Element

// DB is an in-memory symbol database, loaded from and saved to a single
// JSON file. It is read-only during a compile pass except for Add, which
// records newly-seen declarations to be persisted by Save at pass end.
type DB struct {
	packages map[string]Package
	order    []string // package names, insertion order, for find_packages
}

// New returns an empty database.
func New() *DB {
	return &DB{packages: make(map[string]Package)}
}

// Load reads path and parses it as the symbol database format. A missing
// file yields an empty database silently; a malformed one reports
// UNEXPECTED_DATABASE and is also treated as empty, but Add/Save still
// work against it and will overwrite the bad file on Save (§6.3).
func Load(path string, diags *diag.Context) *DB {
	db := New()
	raw, err := os.ReadFile(path)
	if err != nil {
		return db
	}
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return db
	}
	if !gjson.Valid(text) {
		emit(diags, path, "symbol database is not valid JSON")
		return db
	}
	root := gjson.Parse(text)
	if !root.IsObject() {
		emit(diags, path, "symbol database must be a JSON object or null")
		return db
	}
	malformed := false
	root.ForEach(func(pkgKey, pkgVal gjson.Result) bool {
		if !pkgVal.IsObject() {
			emit(diags, path, "package %q is not a JSON object", pkgKey.String())
			malformed = true
			return false
		}
		pkg := Package{}
		pkgVal.ForEach(func(elemKey, elemVal gjson.Result) bool {
			pkg[elemKey.String()] = Element{
				Type:     elemVal.Get("type").String(),
				Filename: elemVal.Get("filename").String(),
				Line:     int(elemVal.Get("line").Int()),
			}
			return true
		})
		db.addPackage(pkgKey.String(), pkg)
		return true
	})
	if malformed {
		return New()
	}
	return db
}

func emit(diags *diag.Context, path, format string, args ...any) {
	if diags == nil {
		return
	}
	diags.Emitf(diag.Warning, diag.UnexpectedDatabase, position.Position{Filename: path}, format, args...)
}

func (db *DB) addPackage(name string, pkg Package) {
	if _, exists := db.packages[name]; !exists {
		db.order = append(db.order, name)
	}
	db.packages[name] = pkg
}

// GetPackage returns the package named name, and whether it exists.
func (db *DB) GetPackage(name string) (Package, bool) {
	pkg, ok := db.packages[name]
	return pkg, ok
}

// FindPackages returns the names of every package matching the glob
// pattern (`*` matches any run, per tidwall/match semantics), in the
// order they were first added.
func (db *DB) FindPackages(pattern string) []string {
	var names []string
	for _, name := range db.order {
		if match.Match(name, pattern) {
			names = append(names, name)
		}
	}
	return names
}

// Add records element's metadata under pkgName, creating the package if it
// does not already exist. A repeated element name overwrites in place.
func (db *DB) Add(pkgName, elemName string, el Element) {
	pkg, ok := db.packages[pkgName]
	if !ok {
		pkg = Package{}
		db.addPackage(pkgName, pkg)
	}
	pkg[elemName] = el
}

// Remove deletes one element from a package, removing the package itself
// once it becomes empty. It reports whether anything was removed.
func (db *DB) Remove(pkgName, elemName string) bool {
	pkg, ok := db.packages[pkgName]
	if !ok {
		return false
	}
	if _, ok := pkg[elemName]; !ok {
		return false
	}
	delete(pkg, elemName)
	if len(pkg) == 0 {
		delete(db.packages, pkgName)
		for i, name := range db.order {
			if name == pkgName {
				db.order = append(db.order[:i], db.order[i+1:]...)
				break
			}
		}
	}
	return true
}

// Save writes the database to path as pretty-printed JSON.
func (db *DB) Save(path string) error {
	data := []byte("{}")
	for _, pkgName := range db.order {
		pkg := db.packages[pkgName]
		elemNames := make([]string, 0, len(pkg))
		for name := range pkg {
			elemNames = append(elemNames, name)
		}
		sort.Strings(elemNames)
		for _, elemName := range elemNames {
			el := pkg[elemName]
			base := escapePathSegment(pkgName) + "." + escapePathSegment(elemName)
			var err error
			if data, err = sjson.SetBytes(data, base+".type", el.Type); err != nil {
				return err
			}
			if data, err = sjson.SetBytes(data, base+".filename", el.Filename); err != nil {
				return err
			}
			if data, err = sjson.SetBytes(data, base+".line", el.Line); err != nil {
				return err
			}
		}
	}
	return os.WriteFile(path, pretty.Pretty(data), 0o644)
}

// escapePathSegment escapes '.' so a package or element name containing a
// literal dot does not get parsed as an sjson path separator.
func escapePathSegment(s string) string {
	return strings.ReplaceAll(s, ".", "\\.")
}
