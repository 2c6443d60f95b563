package arch

// Linux syscall table for the 32-bit arm EABI, ordered by name. The EABI
// has direct socket and ipc syscalls, so there are no pseudo entries.
var arm32SyscallTable = []SyscallEntry{
	{"accept", 285},
	{"accept4", 366},
	{"access", 33},
	{"bind", 282},
	{"brk", 45},
	{"capget", 184},
	{"capset", 185},
	{"chdir", 12},
	{"chmod", 15},
	{"chown", 182},
	{"chroot", 61},
	{"clock_getres", 264},
	{"clock_gettime", 263},
	{"clock_nanosleep", 265},
	{"clock_settime", 262},
	{"clone", 120},
	{"close", 6},
	{"connect", 283},
	{"creat", 8},
	{"dup", 41},
	{"dup2", 63},
	{"dup3", 358},
	{"epoll_create", 250},
	{"epoll_create1", 357},
	{"epoll_ctl", 251},
	{"epoll_pwait", 346},
	{"epoll_wait", 252},
	{"eventfd2", 356},
	{"execve", 11},
	{"execveat", 387},
	{"exit", 1},
	{"exit_group", 248},
	{"faccessat", 334},
	{"fchdir", 133},
	{"fchmod", 94},
	{"fchmodat", 333},
	{"fchown", 95},
	{"fchownat", 325},
	{"fcntl", 55},
	{"fcntl64", 221},
	{"fdatasync", 148},
	{"flock", 143},
	{"fork", 2},
	{"fstat", 108},
	{"fstat64", 197},
	{"fstatat64", 327},
	{"fstatfs", 100},
	{"fsync", 118},
	{"ftruncate", 93},
	{"futex", 240},
	{"getcwd", 183},
	{"getdents", 141},
	{"getdents64", 217},
	{"getegid", 50},
	{"geteuid", 49},
	{"getgid", 47},
	{"getitimer", 105},
	{"getpeername", 287},
	{"getpgid", 132},
	{"getpgrp", 65},
	{"getpid", 20},
	{"getppid", 64},
	{"getpriority", 96},
	{"getrandom", 384},
	{"getrusage", 77},
	{"getsockname", 286},
	{"getsockopt", 295},
	{"gettid", 224},
	{"gettimeofday", 78},
	{"getuid", 24},
	{"ioctl", 54},
	{"kill", 37},
	{"lchown", 16},
	{"link", 9},
	{"linkat", 330},
	{"listen", 284},
	{"lseek", 19},
	{"lstat", 107},
	{"madvise", 220},
	{"mkdir", 39},
	{"mkdirat", 323},
	{"mknod", 14},
	{"mknodat", 324},
	{"mmap2", 192},
	{"mount", 21},
	{"mprotect", 125},
	{"mremap", 163},
	{"msgctl", 304},
	{"msgget", 303},
	{"msgrcv", 302},
	{"msgsnd", 301},
	{"msync", 144},
	{"munmap", 91},
	{"nanosleep", 162},
	{"open", 5},
	{"openat", 322},
	{"pause", 29},
	{"personality", 136},
	{"pipe", 42},
	{"pipe2", 359},
	{"poll", 168},
	{"ppoll", 336},
	{"prctl", 172},
	{"pread64", 180},
	{"prlimit64", 369},
	{"pselect6", 335},
	{"ptrace", 26},
	{"pwrite64", 181},
	{"read", 3},
	{"readlink", 85},
	{"readlinkat", 332},
	{"readv", 145},
	{"reboot", 88},
	{"recv", 291},
	{"recvfrom", 292},
	{"recvmmsg", 365},
	{"recvmsg", 297},
	{"rename", 38},
	{"renameat", 329},
	{"rmdir", 40},
	{"rt_sigaction", 174},
	{"rt_sigpending", 176},
	{"rt_sigprocmask", 175},
	{"rt_sigqueueinfo", 178},
	{"rt_sigreturn", 173},
	{"rt_sigsuspend", 179},
	{"rt_sigtimedwait", 177},
	{"sched_getaffinity", 242},
	{"sched_setaffinity", 241},
	{"sched_yield", 158},
	{"semctl", 300},
	{"semget", 299},
	{"semop", 298},
	{"semtimedop", 312},
	{"send", 289},
	{"sendfile", 187},
	{"sendmmsg", 374},
	{"sendmsg", 296},
	{"sendto", 290},
	{"setgid", 46},
	{"setgroups", 81},
	{"sethostname", 74},
	{"setitimer", 104},
	{"setpgid", 57},
	{"setpriority", 97},
	{"setresgid", 170},
	{"setresuid", 164},
	{"setrlimit", 75},
	{"setsid", 66},
	{"setsockopt", 294},
	{"setuid", 23},
	{"shmat", 305},
	{"shmctl", 308},
	{"shmdt", 306},
	{"shmget", 307},
	{"shutdown", 293},
	{"sigaltstack", 186},
	{"socket", 281},
	{"socketpair", 288},
	{"splice", 340},
	{"stat", 106},
	{"stat64", 195},
	{"statfs", 99},
	{"statx", 397},
	{"symlink", 83},
	{"symlinkat", 331},
	{"sync", 36},
	{"sysinfo", 116},
	{"tgkill", 268},
	{"timer_create", 257},
	{"times", 43},
	{"tkill", 238},
	{"truncate", 92},
	{"umask", 60},
	{"uname", 122},
	{"unlink", 10},
	{"unlinkat", 328},
	{"utimensat", 348},
	{"vfork", 190},
	{"wait4", 114},
	{"waitid", 280},
	{"write", 4},
	{"writev", 146},
	tableEnd,
}
