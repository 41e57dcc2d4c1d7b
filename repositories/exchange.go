//go:generate go run go.uber.org/mock/mockgen -source=exchange.go -destination=../mocks/mock_exchange_repository.go -package=mocks
package repositories

import (
	"chatty/domain"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const exchangePrefix = "exchange:"

type IExchangeRepository interface {
	StoreExchange(exchange domain.Exchange) error
	GetExchanges(cursor *string) ([]domain.Exchange, *string, error)
}

type ExchangeRepository struct {
	db             *badger.DB
	log            *slog.Logger
	limitExchanges *int
}

func NewExchangeRepository(db *badger.DB, log *slog.Logger, limitExchanges *int) ExchangeRepository {
	return ExchangeRepository{db: db, log: log, limitExchanges: limitExchanges}
}

// StoreExchange appends an exchange to the transcript.
// The key is formatted as "exchange:{timestamp_padded}:{uuid}": the 19-digit
// zero padding keeps lexicographical order chronological and the UUID keeps
// two exchanges of the same nanosecond apart.
func (e ExchangeRepository) StoreExchange(exchange domain.Exchange) error {
	key := fmt.Sprintf("%s%019d:%s", exchangePrefix, exchange.At.UnixNano(), exchange.ID)
	bytes, err := json.Marshal(exchange)
	if err != nil {
		return err
	}
	return e.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// GetExchanges walks the transcript backwards, most recent first.
// The returned cursor resumes the walk right after the last exchange read.
func (e ExchangeRepository) GetExchanges(cursor *string) ([]domain.Exchange, *string, error) {
	var exchanges []domain.Exchange
	var lastKey string
	err := e.db.View(func(txn *badger.Txn) error {
		prefix := []byte(exchangePrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if e.limitExchanges != nil && len(exchanges) == *e.limitExchanges {
				e.log.Debug(fmt.Sprintf("Maximum of %d exchanges reached", *e.limitExchanges))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[len(prefix):])
			var exchange domain.Exchange
			err := item.Value(func(value []byte) error {
				return json.Unmarshal(value, &exchange)
			})
			if err != nil {
				return err
			}
			exchanges = append(exchanges, exchange)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return exchanges, &lastKey, nil
}
