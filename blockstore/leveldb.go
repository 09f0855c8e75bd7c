package blockstore

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"github.com/wangbaolong/gotron/types"
)

// Key prefixes for LevelDB storage.
var (
	prefixNumber = []byte("N:") // Number -> id mapping
	prefixBlock  = []byte("B:") // Id -> block data mapping
	keyMetaChain = []byte("M:chain")
)

// LevelDBStore implements Store using LevelDB.
type LevelDBStore struct {
	db     *leveldb.DB
	path   string
	height int64
	mu     sync.RWMutex
}

var _ Store = (*LevelDBStore)(nil)

// NewLevelDBStore opens a LevelDB-backed block store at path.
func NewLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, &opt.Options{
		NoSync: false, // Ensure durability
	})
	if err != nil {
		return nil, fmt.Errorf("opening leveldb: %w", err)
	}

	store := &LevelDBStore{
		db:     db,
		path:   path,
		height: -1,
	}

	if err := store.loadHeight(); err != nil {
		db.Close()
		return nil, fmt.Errorf("loading store height: %w", err)
	}

	return store, nil
}

// loadHeight scans the number index for the highest stored block.
func (s *LevelDBStore) loadHeight() error {
	iter := s.db.NewIterator(util.BytesPrefix(prefixNumber), nil)
	defer iter.Release()

	for iter.Next() {
		number := decodeInt64(iter.Key()[len(prefixNumber):])
		if number > s.height {
			s.height = number
		}
	}
	return iter.Error()
}

// SaveBlock persists canonical block bytes at the given number.
func (s *LevelDBStore) SaveBlock(number int64, id types.Hash, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	numberKey := makeNumberKey(number)
	exists, err := s.db.Has(numberKey, nil)
	if err != nil {
		return fmt.Errorf("checking block existence: %w", err)
	}
	if exists {
		return fmt.Errorf("number %d: %w", number, types.ErrBlockAlreadyExists)
	}

	batch := new(leveldb.Batch)
	batch.Put(numberKey, id.Bytes())
	batch.Put(makeBlockKey(id), makeBlockValue(number, data))

	if err := s.db.Write(batch, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("writing block: %w", err)
	}

	if number > s.height {
		s.height = number
	}
	return nil
}

// LoadBlock retrieves a block by number.
func (s *LevelDBStore) LoadBlock(number int64) (types.Hash, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idBytes, err := s.db.Get(makeNumberKey(number), nil)
	if err == leveldb.ErrNotFound {
		return types.Hash{}, nil, fmt.Errorf("number %d: %w", number, types.ErrBlockNotFound)
	}
	if err != nil {
		return types.Hash{}, nil, fmt.Errorf("getting id for number %d: %w", number, err)
	}

	id, err := types.HashFromBytes(idBytes)
	if err != nil {
		return types.Hash{}, nil, fmt.Errorf("corrupt id index for number %d: %w", number, err)
	}

	value, err := s.db.Get(makeBlockKey(id), nil)
	if err == leveldb.ErrNotFound {
		return types.Hash{}, nil, fmt.Errorf("id %s: %w", id, types.ErrBlockNotFound)
	}
	if err != nil {
		return types.Hash{}, nil, fmt.Errorf("getting block data: %w", err)
	}

	_, data := parseBlockValue(value)
	return id, data, nil
}

// LoadBlockByID retrieves a block by its identifier.
func (s *LevelDBStore) LoadBlockByID(id types.Hash) (int64, []byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, err := s.db.Get(makeBlockKey(id), nil)
	if err == leveldb.ErrNotFound {
		return 0, nil, fmt.Errorf("id %s: %w", id, types.ErrBlockNotFound)
	}
	if err != nil {
		return 0, nil, fmt.Errorf("getting block by id: %w", err)
	}

	number, data := parseBlockValue(value)
	return number, data, nil
}

// HasBlock checks if a block exists at the given number.
func (s *LevelDBStore) HasBlock(number int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exists, _ := s.db.Has(makeNumberKey(number), nil)
	return exists
}

// Height returns the highest stored block number, or -1 when empty.
func (s *LevelDBStore) Height() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.height
}

// Meta returns the chain metadata record, or nil when none is stored.
func (s *LevelDBStore) Meta() (*ChainMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.db.Get(keyMetaChain, nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting chain meta: %w", err)
	}

	meta := &ChainMeta{}
	if err := cramberry.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("decoding chain meta: %w", err)
	}
	return meta, nil
}

// SaveMeta writes the chain metadata record.
func (s *LevelDBStore) SaveMeta(meta *ChainMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := cramberry.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encoding chain meta: %w", err)
	}
	if err := s.db.Put(keyMetaChain, data, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("writing chain meta: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *LevelDBStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// makeNumberKey creates a key for number -> id mapping.
func makeNumberKey(number int64) []byte {
	key := make([]byte, len(prefixNumber)+8)
	copy(key, prefixNumber)
	binary.BigEndian.PutUint64(key[len(prefixNumber):], uint64(number))
	return key
}

// makeBlockKey creates a key for id -> data mapping.
func makeBlockKey(id types.Hash) []byte {
	key := make([]byte, 0, len(prefixBlock)+types.HashSize)
	key = append(key, prefixBlock...)
	key = append(key, id.Bytes()...)
	return key
}

// makeBlockValue prepends the block number to the data for reverse lookup.
func makeBlockValue(number int64, data []byte) []byte {
	value := make([]byte, 8+len(data))
	binary.BigEndian.PutUint64(value, uint64(number))
	copy(value[8:], data)
	return value
}

// parseBlockValue splits a stored block value into number and data.
func parseBlockValue(value []byte) (int64, []byte) {
	if len(value) < 8 {
		return 0, nil
	}
	return decodeInt64(value[:8]), value[8:]
}

func decodeInt64(b []byte) int64 {
	if len(b) < 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}
