package interfaces

type PersisterInterface interface {
	Restore() error
	Persist() error
}
