package dto

// BranchStat summarizes placement progress for one branch.
type BranchStat struct {
	Branch   string `json:"branch" example:"CSE"`
	Students int    `json:"students"`
	Placed   int    `json:"placed"`
}

// DriveStat summarizes applicant volume for one drive.
type DriveStat struct {
	DriveID      int64  `json:"driveId"`
	Company      string `json:"company" example:"TCS"`
	Role         string `json:"role"`
	Applications int    `json:"applications"`
	Selected     int    `json:"selected"`
}

// PlacementStatsResponse is the TPO analytics snapshot.
type PlacementStatsResponse struct {
	TotalStudents      int            `json:"totalStudents"`
	TotalDrives        int            `json:"totalDrives"`
	ActiveDrives       int            `json:"activeDrives"`
	TotalApplications  int            `json:"totalApplications"`
	PlacedStudents     int            `json:"placedStudents"`
	PlacementRate      float64        `json:"placementRate" example:"42.5"`
	BranchStats        []BranchStat   `json:"branchStats"`
	TopDrives          []DriveStat    `json:"topDrives"`
	StatusDistribution map[string]int `json:"statusDistribution"`
}
