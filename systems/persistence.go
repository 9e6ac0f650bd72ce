package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProgress is the run state stored on disk between sessions.
type SavedProgress struct {
	DrawColliders  bool `json:"drawColliders"`
	CheckpointsHit int  `json:"checkpointsHit"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skirmish",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads saved progress from disk. Returns nil when nothing has
// been saved yet.
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return nil, err
	}

	return &progress, nil
}

// SaveProgress saves progress to disk
func SaveProgress(p *SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}
