package datastore

import (
	"github.com/Xausdorf/debit-core/internal/domain/repository"
)

// BackupDataStoreType selects the backup store. Any other value selects the default one.
const BackupDataStoreType = "Backup"

type Factory struct {
	primary repository.AccountStore
	backup  repository.AccountStore
}

func NewFactory(primary, backup repository.AccountStore) *Factory {
	return &Factory{
		primary: primary,
		backup:  backup,
	}
}

func (f *Factory) CreateDataStore(dataStoreType string) repository.AccountStore {
	if dataStoreType == BackupDataStoreType {
		return f.backup
	}
	return f.primary
}
