package iputils

import "math"

type Statistics struct {
	SubnetCount        int
	RequestedHosts     int
	AllocatedAddresses uint64
	WastedAddresses    uint64
}

func (s *Statistics) Clear() {
	s.SubnetCount = 0
	s.RequestedHosts = 0
	s.AllocatedAddresses = 0
	s.WastedAddresses = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.SubnetCount += other.SubnetCount
	s.RequestedHosts += other.RequestedHosts
	s.AllocatedAddresses += other.AllocatedAddresses
	s.WastedAddresses += other.WastedAddresses
}

type DetailedStatistics struct {
	Statistics
	UnusedRangeCount   int
	SubnetSizeMin      uint64
	SubnetSizeMax      uint64
	UnusedRangeSizeMin uint64
	UnusedRangeSizeMax uint64
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.UnusedRangeCount = 0
	s.SubnetSizeMin = math.MaxUint64
	s.SubnetSizeMax = 0
	s.UnusedRangeSizeMin = math.MaxUint64
	s.UnusedRangeSizeMax = 0
}

func (s *DetailedStatistics) AddUnusedRange(size uint64) {
	s.UnusedRangeCount++

	if size < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = size
	}

	if size > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = size
	}
}

func (s *DetailedStatistics) AddSubnet(blockSize uint64, requestedHosts int) {
	s.SubnetCount++
	s.RequestedHosts += requestedHosts
	s.AllocatedAddresses += blockSize
	s.WastedAddresses += blockSize - uint64(requestedHosts)

	if blockSize < s.SubnetSizeMin {
		s.SubnetSizeMin = blockSize
	}

	if blockSize > s.SubnetSizeMax {
		s.SubnetSizeMax = blockSize
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.UnusedRangeCount += other.UnusedRangeCount

	if other.UnusedRangeSizeMin < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = other.UnusedRangeSizeMin
	}

	if other.UnusedRangeSizeMax > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = other.UnusedRangeSizeMax
	}

	if other.SubnetSizeMin < s.SubnetSizeMin {
		s.SubnetSizeMin = other.SubnetSizeMin
	}

	if other.SubnetSizeMax > s.SubnetSizeMax {
		s.SubnetSizeMax = other.SubnetSizeMax
	}
}
