package riot

// QueueID identifies a matchmaking queue in match-v5 filters.
type QueueID int

const (
	QueueAll         QueueID = 0
	QueueNormalDraft QueueID = 400
	QueueRankedSolo  QueueID = 420
	QueueNormalBlind QueueID = 430
	QueueRankedFlex  QueueID = 440
	QueueARAM        QueueID = 450
)

var queueByType = map[string]QueueID{
	"RANKED_SOLO_5x5":   QueueRankedSolo,
	"RANKED_FLEX_SR":    QueueRankedFlex,
	"NORMAL_BLIND_PICK": QueueNormalBlind,
	"NORMAL_DRAFT_PICK": QueueNormalDraft,
	"ARAM":              QueueARAM,
	"ALL":               QueueAll,
}

// QueueForType maps a league-v4 queueType string to its queue id.
func QueueForType(queueType string) (QueueID, bool) {
	q, ok := queueByType[queueType]
	return q, ok
}
