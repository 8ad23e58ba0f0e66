package finances

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadAccountList loads the accounts table and every account's observation
// file from a data directory.
//
// The directory layout mirrors the source spreadsheet: accounts.jsonl is the
// Accounts sheet, and each account id names its own observation file
// ("<id>.jsonl"). An account declared without an observation file is a
// MissingDataError: the whole load fails rather than producing a list that
// can only yield a partial ledger.
func LoadAccountList(dir string) (*AccountList, error) {
	f, err := os.Open(filepath.Join(dir, "accounts.jsonl"))
	if err != nil {
		return nil, fmt.Errorf("could not open accounts table in %q: %w", dir, err)
	}
	defer f.Close()

	list, err := DecodeAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode accounts table: %w", err)
	}

	for a := range list.All() {
		obs, err := loadObservations(dir, a.ID)
		if err != nil {
			return nil, err
		}
		a.SetObservations(obs)
	}
	return list, nil
}

func loadObservations(dir, accountID string) ([]Observation, error) {
	f, err := os.Open(filepath.Join(dir, accountID+".jsonl"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingDataError{AccountID: accountID}
	}
	if err != nil {
		return nil, fmt.Errorf("could not open history of account %q: %w", accountID, err)
	}
	defer f.Close()

	obs, err := DecodeObservations(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode history of account %q: %w", accountID, err)
	}
	if len(obs) == 0 {
		return nil, &MissingDataError{AccountID: accountID}
	}
	return obs, nil
}

// LoadShareTransactions loads the holdings transaction log from a data
// directory. A missing file is not an error: not everyone holds investments.
func LoadShareTransactions(dir string) ([]ShareTransaction, error) {
	f, err := os.Open(filepath.Join(dir, "holdings.jsonl"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open holdings log in %q: %w", dir, err)
	}
	defer f.Close()

	txs, err := DecodeShareTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode holdings log: %w", err)
	}
	return txs, nil
}
