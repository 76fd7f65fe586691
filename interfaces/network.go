package interfaces

// INetwork is the read-only view of the interaction graph a simulation runs on.
// Implementations must return nodes and neighbors in a stable order, the engine relies on it for determinism.
type INetwork interface {
	Nodes() []int64
	Neighbors(node int64) []int64
	Degree(node int64) int
}

type networkType string

type INetworkType interface {
	getNetworkType() networkType
	String() string
}

// this is just for preventing simple string from being used as INetworkType
func (nType networkType) getNetworkType() networkType {
	return nType
}

func (nType networkType) String() string {
	return string(nType)
}

// add network types here
const (
	COMPLETE_NETWORK        = networkType("complete")
	ERDOS_RENYI_NETWORK     = networkType("erdosRenyi")
	RANDOM_REGULAR_NETWORK  = networkType("randomRegular")
	BARABASI_ALBERT_NETWORK = networkType("barabasiAlbert")
	WATTS_STROGATZ_NETWORK  = networkType("wattsStrogatz")
	COMMUNITY_NETWORK       = networkType("community")
)

var NETWORK_TYPE_MAP = map[string]INetworkType{
	"complete":       COMPLETE_NETWORK,
	"erdosRenyi":     ERDOS_RENYI_NETWORK,
	"randomRegular":  RANDOM_REGULAR_NETWORK,
	"barabasiAlbert": BARABASI_ALBERT_NETWORK,
	"wattsStrogatz":  WATTS_STROGATZ_NETWORK,
	"community":      COMMUNITY_NETWORK,
	"":               COMPLETE_NETWORK,
}
