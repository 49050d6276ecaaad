// Package plugins содержит операции калькулятора и механизм их обнаружения.
//
// Каждая операция — отдельный файл <name>_command.go, который в init() регистрирует
// свою единицу (Unit) в каталоге Default. Discover обходит каталог и строит реестр:
// новая операция добавляется новым файлом, без правок в коде диспетчеризации.
package plugins

import (
	"sort"
	"sync"

	"pluginCalc/internal/ports"
)

const (
	// moduleSuffix — суффикс имени единицы, по которому она распознаётся как операция.
	moduleSuffix = "_command"
	// typeSuffix — суффикс имени реализующего типа.
	typeSuffix = "Command"
)

// Unit — единица плагина: имя модуля (например "mean_command"), имя реализующего типа и конструктор.
type Unit struct {
	Module string
	Type   string
	New    func() ports.IOperation
}

// Catalog — логическое место, где лежат единицы операций.
type Catalog struct {
	mu    sync.Mutex
	units []Unit
}

// Default — каталог, в который регистрируются встроенные операции.
var Default = &Catalog{}

// NewCatalog создаёт пустой каталог (для тестов и сторонних наборов операций).
func NewCatalog(units ...Unit) *Catalog {
	c := &Catalog{}
	for _, u := range units {
		c.Register(u)
	}
	return c
}

// Register добавляет единицу в каталог.
func (c *Catalog) Register(u Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.units = append(c.units, u)
}

// Units возвращает единицы, отсортированные по имени модуля (стабильный порядок сканирования).
func (c *Catalog) Units() []Unit {
	c.mu.Lock()
	defer c.mu.Unlock()
	units := make([]Unit, len(c.units))
	copy(units, c.units)
	sort.SliceStable(units, func(i, j int) bool { return units[i].Module < units[j].Module })
	return units
}

// Register регистрирует единицу в каталоге Default. Вызывается из init() файлов операций.
func Register(u Unit) {
	Default.Register(u)
}
