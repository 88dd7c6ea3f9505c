// Package loader compiles Lua content packs into a generate.Catalog.
// The Lua VM is discarded after loading; nothing runs Lua during play.
package loader

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/underworld/engine/generate"
)

//go:embed content/*.lua
var content embed.FS

// collector accumulates Lua definitions during file execution.
type collector struct {
	weapons     []rawDef
	wearables   []rawDef
	inventories []rawDef
	npcs        []rawDef
	spawns      []rawDef
	flavours    []rawDef
	player      *lua.LTable
	rooms       *lua.LTable
}

// rawDef is a named table before compilation.
type rawDef struct {
	name  string
	table *lua.LTable
}

// Load reads every .lua file in dir, compiles the definitions into a
// catalog and validates references between them.
func Load(dir string, log *slog.Logger) (*generate.Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	return LoadFS(os.DirFS(dir), log)
}

// LoadDefault compiles the content pack built into the binary.
func LoadDefault(log *slog.Logger) (*generate.Catalog, error) {
	sub, err := fs.Sub(content, "content")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub, log)
}

// LoadFS compiles the .lua files at the root of fsys.
func LoadFS(fsys fs.FS, log *slog.Logger) (*generate.Catalog, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading content: %w", err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found")
	}
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		src, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		fn, err := L.Load(strings.NewReader(string(src)), f)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		L.Push(fn)
		if err := L.PCall(0, lua.MultRet, nil); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
		log.Debug("content file executed", "file", f)
	}

	ve := &ValidationError{}
	cat := compile(coll, ve)
	validate(cat, coll, ve)

	for _, w := range ve.Warnings {
		log.Warn("content", "warning", w)
	}
	if len(ve.Errors) > 0 {
		return nil, ve
	}

	log.Info("content loaded",
		"files", len(luaFiles),
		"weapons", len(cat.Weapons),
		"wearables", len(cat.Wearables),
		"npcs", len(cat.Npcs),
	)
	return cat, nil
}

// sortedLuaFiles puts main.lua first and the rest in name order.
func sortedLuaFiles(files []string) []string {
	sort.Slice(files, func(i, j int) bool {
		if path.Base(files[i]) == "main.lua" {
			return true
		}
		if path.Base(files[j]) == "main.lua" {
			return false
		}
		return files[i] < files[j]
	})
	return files
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the VM or break determinism.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage", "require", "module",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.random and math.randomseed to preserve determinism.
	if mathTbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("random", lua.LNil)
		mathTbl.RawSetString("randomseed", lua.LNil)
	}
}
