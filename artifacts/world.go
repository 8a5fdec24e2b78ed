package artifacts

// MapContentType is the kind of content placed on a map tile
type MapContentType string

const (
	ContentMonster       MapContentType = "monster"
	ContentResource      MapContentType = "resource"
	ContentWorkshop      MapContentType = "workshop"
	ContentBank          MapContentType = "bank"
	ContentGrandExchange MapContentType = "grand_exchange"
	ContentTasksMaster   MapContentType = "tasks_master"
	ContentSantaClaus    MapContentType = "santa_claus"
)

// Map is a map tile
type Map struct {
	Name    string      `json:"name"`
	Skin    string      `json:"skin"`
	X       int         `json:"x"`
	Y       int         `json:"y"`
	Content *MapContent `json:"content"`
}

// HasContent reports whether the tile holds content of the given type
func (m *Map) HasContent(t MapContentType) bool {
	return m.Content != nil && m.Content.Type == t
}

// MapContent is what sits on a map tile
type MapContent struct {
	Type MapContentType `json:"type"`
	Code string         `json:"code"`
}

// Monster is a monster definition
type Monster struct {
	Name        string        `json:"name"`
	Code        string        `json:"code"`
	Level       int           `json:"level"`
	HP          int           `json:"hp"`
	AttackFire  int           `json:"attack_fire"`
	AttackEarth int           `json:"attack_earth"`
	AttackWater int           `json:"attack_water"`
	AttackAir   int           `json:"attack_air"`
	ResFire     int           `json:"res_fire"`
	ResEarth    int           `json:"res_earth"`
	ResWater    int           `json:"res_water"`
	ResAir      int           `json:"res_air"`
	MinGold     int           `json:"min_gold"`
	MaxGold     int           `json:"max_gold"`
	Drops       []MonsterDrop `json:"drops"`
}

// MonsterDrop is an item a monster can drop
type MonsterDrop struct {
	Code        string `json:"code"`
	Rate        int    `json:"rate"`
	MinQuantity int    `json:"min_quantity"`
	MaxQuantity int    `json:"max_quantity"`
}

// Element is a damage element
type Element string

const (
	ElementFire  Element = "fire"
	ElementEarth Element = "earth"
	ElementWater Element = "water"
	ElementAir   Element = "air"
)

// FightResult is the outcome of a fight
type FightResult string

const (
	FightWin  FightResult = "win"
	FightLose FightResult = "lose"
)

// Fight is the detailed result of a fight action
type Fight struct {
	XP                 int             `json:"xp"`
	Gold               int             `json:"gold"`
	Drops              []ItemComponent `json:"drops"`
	Turns              int             `json:"turns"`
	MonsterBlockedHits BlockedHits     `json:"monster_blocked_hits"`
	PlayerBlockedHits  BlockedHits     `json:"player_blocked_hits"`
	Logs               []string        `json:"logs"`
	Result             FightResult     `json:"result"`
}

// Won reports whether the character won
func (f *Fight) Won() bool {
	return f.Result == FightWin
}

// BlockedHits counts hits blocked per element
type BlockedHits struct {
	Fire  int `json:"fire"`
	Earth int `json:"earth"`
	Water int `json:"water"`
	Air   int `json:"air"`
	Total int `json:"total"`
}

// BankGold is the gold balance after a gold transaction
type BankGold struct {
	Quantity int `json:"quantity"`
}

// BankDetails describes the account bank
type BankDetails struct {
	Slots             int `json:"slots"`
	Expansions        int `json:"expansions"`
	NextExpansionCost int `json:"next_expansion_cost"`
	Gold              int `json:"gold"`
}

// Status is the server status
type Status struct {
	Status           string         `json:"status"`
	Version          string         `json:"version"`
	MaxLevel         int            `json:"max_level"`
	CharactersOnline int            `json:"characters_online"`
	ServerTime       string         `json:"server_time"`
	Announcements    []Announcement `json:"announcements"`
	LastWipe         string         `json:"last_wipe"`
	NextWipe         string         `json:"next_wipe"`
}

// Announcement is a server announcement
type Announcement struct {
	Message   string  `json:"message"`
	CreatedAt *string `json:"created_at"`
}
