package plugins

import (
	"fmt"
	"log/slog"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pluginCalc/internal/ports"
)

var _ ports.IRegistry = (*Registry)(nil)

// Registry — упорядоченное отображение имя операции -> экземпляр. После Discover только читается.
type Registry struct {
	ops *orderedmap.OrderedMap[string, ports.IOperation]
}

// NewRegistry возвращает пустой реестр.
func NewRegistry() *Registry {
	return &Registry{ops: orderedmap.New[string, ports.IOperation]()}
}

// Lookup ищет операцию по имени.
func (r *Registry) Lookup(name string) (ports.IOperation, bool) {
	return r.ops.Get(name)
}

// Names возвращает имена операций в порядке регистрации (для команды menu).
func (r *Registry) Names() []string {
	names := make([]string, 0, r.ops.Len())
	for pair := r.ops.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len — количество операций.
func (r *Registry) Len() int {
	return r.ops.Len()
}

// set кладёт операцию; повторное имя перезаписывает значение, позиция остаётся прежней.
func (r *Registry) set(name string, op ports.IOperation) {
	r.ops.Set(name, op)
}

// TypeName выводит имя реализующего типа из имени операции:
// слова через "_" с заглавной буквы, склеенные, плюс "Command" ("standard_deviation" -> "StandardDeviationCommand").
func TypeName(operation string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for _, word := range strings.Split(operation, "_") {
		b.WriteString(title.String(word))
	}
	b.WriteString(typeSuffix)
	return b.String()
}

// Discover сканирует каталог и строит реестр. Битые единицы логируются и пропускаются,
// отсутствующий каталог даёт пустой реестр.
func Discover(log *slog.Logger, catalog *Catalog) *Registry {
	reg := NewRegistry()
	if catalog == nil {
		log.Warn("plugin source missing")
		return reg
	}

	for _, unit := range catalog.Units() {
		if !strings.HasSuffix(unit.Module, moduleSuffix) {
			continue
		}
		name := strings.TrimSuffix(unit.Module, moduleSuffix)
		op, err := load(name, unit)
		if err != nil {
			log.Error("plugin skipped", "module", unit.Module, "error", err)
			continue
		}
		if _, exists := reg.Lookup(name); exists {
			log.Warn("plugin overrides earlier registration", "operation", name, "module", unit.Module)
		}
		reg.set(name, op)
		log.Info("plugin loaded", "module", unit.Module, "operation", name)
	}
	return reg
}

// load проверяет соглашение об именах и создаёт экземпляр операции.
func load(name string, unit Unit) (op ports.IOperation, err error) {
	if name == "" {
		return nil, fmt.Errorf("empty operation name")
	}
	want := TypeName(name)
	if unit.Type != want {
		return nil, fmt.Errorf("module %s has no type %s", unit.Module, want)
	}
	if unit.New == nil {
		return nil, fmt.Errorf("type %s has no constructor", want)
	}

	defer func() {
		if r := recover(); r != nil {
			op, err = nil, fmt.Errorf("construct %s: %v", want, r)
		}
	}()
	op = unit.New()
	if op == nil {
		return nil, fmt.Errorf("construct %s: nil operation", want)
	}
	return op, nil
}
