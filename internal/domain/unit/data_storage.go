package unit

// DataStorage is a unit of digital information using binary prefixes.
type DataStorage string

// Supported data storage units. Each step is a factor of 1024.
const (
	Byte     DataStorage = "BYTE"
	Kibibyte DataStorage = "KIBIBYTE"
	Mebibyte DataStorage = "MEBIBYTE"
	Gibibyte DataStorage = "GIBIBYTE"
	Tebibyte DataStorage = "TEBIBYTE"
	Pebibyte DataStorage = "PEBIBYTE"
)

// DataStorages returns every data storage unit in declaration order.
func DataStorages() []DataStorage {
	return []DataStorage{Byte, Kibibyte, Mebibyte, Gibibyte, Tebibyte, Pebibyte}
}

// ParseDataStorage returns the data storage unit with the given name.
func ParseDataStorage(name string) (DataStorage, error) {
	return parse("data storage", name, DataStorages())
}

// IsValid reports whether u is one of the declared data storage units.
func (u DataStorage) IsValid() bool {
	return contains(DataStorages(), u)
}
