package akula

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/ethdb"
	"github.com/ethereum/go-ethereum/log"
	"github.com/gofrs/flock"

	"github.com/tbcd/akula/core"
	"github.com/tbcd/akula/params"
	"github.com/tbcd/akula/sync/headers"
)

// Akula implements the staged header sync service.
type Akula struct {
	config    *Config
	chainSpec *params.ChainSpec

	// DB interfaces
	chainDb ethdb.Database // Block chain database
	dirLock *flock.Flock   // Prevents concurrent use of the data directory

	headerChain *core.HeaderChain
	downloader  *headers.Downloader

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates the service: it locks and opens the chain database, bootstraps
// the genesis block if needed and assembles the header download pipeline.
func New(config *Config) (*Akula, error) {
	chainSpec, err := params.ChainSpecByName(config.Chain)
	if err != nil {
		return nil, err
	}

	var (
		chainDb ethdb.Database
		dirLock *flock.Flock
	)
	if config.DataDir == "" {
		chainDb = rawdb.NewMemoryDatabase()
	} else {
		if err := os.MkdirAll(config.DataDir, 0700); err != nil {
			return nil, err
		}
		dirLock = flock.New(filepath.Join(config.DataDir, "LOCK"))
		locked, err := dirLock.TryLock()
		if err != nil {
			return nil, err
		}
		if !locked {
			return nil, fmt.Errorf("datadir %s already in use", config.DataDir)
		}
		chainDb, err = rawdb.NewLevelDBDatabase(
			filepath.Join(config.DataDir, "chaindata"),
			config.DatabaseCache,
			config.DatabaseHandles,
			"akula/db/chaindata/",
			false,
		)
		if err != nil {
			dirLock.Unlock()
			return nil, err
		}
	}

	wrote, err := core.InitializeGenesis(chainDb, chainSpec)
	if err != nil {
		return nil, err
	}
	if !wrote {
		log.Info("Genesis block already present", "chain", chainSpec.Name)
	}

	headerChain, err := core.NewHeaderChain(chainDb, chainSpec)
	if err != nil {
		return nil, err
	}

	var preverifiedHashes *headers.PreverifiedHashesConfig
	if config.PreverifiedHashesFile != "" {
		preverifiedHashes, err = headers.LoadPreverifiedHashes(chainSpec.Name, config.PreverifiedHashesFile)
	} else {
		preverifiedHashes, err = headers.NewPreverifiedHashesConfig(chainSpec.Name)
	}
	if err != nil {
		return nil, err
	}

	// Slices resume from the last saved anchor.
	head := headerChain.CurrentHeader().Number.Uint64()
	start := head - head%headers.HeaderSliceSize
	headerSlices := headers.NewHeaderSlices(start, start+config.DownloadWindow)
	downloader := headers.NewDownloader(chainDb, headerSlices, preverifiedHashes)

	return &Akula{
		config:      config,
		chainSpec:   chainSpec,
		chainDb:     chainDb,
		dirLock:     dirLock,
		headerChain: headerChain,
		downloader:  downloader,
	}, nil
}

// ChainSpec returns the chain specification the service syncs.
func (s *Akula) ChainSpec() *params.ChainSpec { return s.chainSpec }

// ChainDb returns the chain database.
func (s *Akula) ChainDb() ethdb.Database { return s.chainDb }

// HeaderChain returns the header chain read layer.
func (s *Akula) HeaderChain() *core.HeaderChain { return s.headerChain }

// Downloader returns the header download pipeline.
func (s *Akula) Downloader() *headers.Downloader { return s.downloader }

// Start launches the header download pipeline.
func (s *Akula) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		if err := s.downloader.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Header downloader failed", "err", err)
		}
	}()
	return nil
}

// Stop terminates the pipeline and releases the database and the directory
// lock.
func (s *Akula) Stop() error {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
	if err := s.chainDb.Close(); err != nil {
		return err
	}
	if s.dirLock != nil {
		return s.dirLock.Unlock()
	}
	return nil
}
